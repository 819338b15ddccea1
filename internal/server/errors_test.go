package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/pipeline"
	"github.com/jonathan/ats-optimizer/internal/schemas"
	"github.com/jonathan/ats-optimizer/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "text", Message: "is required"}
	assert.Equal(t, "validation error: text - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrUnsupportedMedia(t *testing.T) {
	err := &ErrUnsupportedMedia{Filename: "cv.pdf", Cause: ingestion.ErrUnsupportedFormat}
	assert.Equal(t, `unsupported file "cv.pdf": unsupported file format`, err.Error())
	assert.ErrorIs(t, err, ingestion.ErrUnsupportedFormat)
	assert.Equal(t, http.StatusUnsupportedMediaType, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", &ErrNotFound{Path: "/x"}, http.StatusNotFound},
		{"schema", &schemas.ValidationError{Schema: "resume.schema.json"}, http.StatusBadRequest},
		{"malformed json", &schemas.SchemaLoadError{Path: "resume.schema.json"}, http.StatusBadRequest},
		{"binary upload", fmt.Errorf("upload: %w", ingestion.ErrUnsupportedFormat), http.StatusUnsupportedMediaType},
		{"bad extension", ingestion.ErrInvalidFileType, http.StatusBadRequest},
		{"no file name", ingestion.ErrNoFileName, http.StatusBadRequest},
		{"empty text", service.ErrEmptyText, http.StatusBadRequest},
		{"no job", fmt.Errorf("run: %w", pipeline.ErrNoJob), http.StatusBadRequest},
		{"no resume", pipeline.ErrNoResume, http.StatusBadRequest},
		{"invalid url", fmt.Errorf("job ingestion failed: %w", ingestion.ErrInvalidURL), http.StatusBadRequest},
		{"fetch failed", fmt.Errorf("job ingestion failed: %w", ingestion.ErrHTTPRequestFailed), http.StatusBadGateway},
		{"too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"unknown", assert.AnError, http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
