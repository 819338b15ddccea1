package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/pipeline"
	"github.com/jonathan/ats-optimizer/internal/schemas"
	"github.com/jonathan/ats-optimizer/internal/service"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedMedia indicates an upload whose format cannot be parsed
type ErrUnsupportedMedia struct {
	Filename string
	Cause    error
}

func (e *ErrUnsupportedMedia) Error() string {
	return fmt.Sprintf("unsupported file %q: %v", e.Filename, e.Cause)
}

func (e *ErrUnsupportedMedia) Unwrap() error {
	return e.Cause
}

// ErrNotFound indicates an unknown route
type ErrNotFound struct {
	Path string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		unsupported *ErrUnsupportedMedia
		notFound    *ErrNotFound
		schema      *schemas.ValidationError
		schemaLoad  *schemas.SchemaLoadError
		tooLarge    *http.MaxBytesError
	)
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupported), errors.Is(err, ingestion.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation),
		errors.As(err, &schema),
		errors.As(err, &schemaLoad),
		errors.Is(err, ingestion.ErrInvalidFileType),
		errors.Is(err, ingestion.ErrNoFileName),
		errors.Is(err, ingestion.ErrInvalidURL),
		errors.Is(err, service.ErrEmptyText),
		errors.Is(err, pipeline.ErrNoJob),
		errors.Is(err, pipeline.ErrNoResume):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrHTTPRequestFailed), errors.Is(err, ingestion.ErrContentExtractionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
