package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-optimizer/internal/generator"
	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/pipeline"
	"github.com/jonathan/ats-optimizer/internal/schemas"
	"github.com/jonathan/ats-optimizer/internal/server/middleware"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// MaxUploadSize caps request bodies on the upload endpoint.
const MaxUploadSize = 16 << 20

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 4 << 20

// ExtractKeywordsRequest is the body of /api/extract-keywords.
type ExtractKeywordsRequest struct {
	JobDescription string `json:"jobDescription" validate:"max=200000"`
}

// ResumeRequest is the body of /api/calculate-score and /api/optimize-resume.
// Missing documents are treated as empty.
type ResumeRequest struct {
	ResumeData  json.RawMessage `json:"resumeData"`
	JobKeywords json.RawMessage `json:"jobKeywords"`
}

// ParseTextRequest is the body of /api/parse-text.
type ParseTextRequest struct {
	Text string `json:"text" validate:"required,max=200000"`
}

// SuggestionsRequest is the body of /api/suggestions.
type SuggestionsRequest struct {
	ResumeSkills []string        `json:"resumeSkills" validate:"max=1000,dive,max=200"`
	JobKeywords  json.RawMessage `json:"jobKeywords"`
}

// FormatDisplayRequest is the body of /api/format-display.
type FormatDisplayRequest struct {
	ResumeData json.RawMessage `json:"resumeData"`
}

// AnalyzeRequest is the body of /api/analyze/stream.
type AnalyzeRequest struct {
	JobDescription string          `json:"jobDescription" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string          `json:"jobUrl" validate:"omitempty,http_url"`
	ResumeText     string          `json:"resumeText" validate:"required_without=ResumeData"`
	ResumeData     json.RawMessage `json:"resumeData"`
	UseBrowser     bool            `json:"useBrowser"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest reads a JSON body into dst and validates its struct tags.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed '%s' validation", fe.Tag())}
		}
		return fmt.Errorf("failed to validate request: %w", err)
	}
	return nil
}

// isAbsent reports whether an optional JSON document was omitted or null.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeResume(raw json.RawMessage) (*types.StructuredResume, error) {
	if isAbsent(raw) {
		return types.NewStructuredResume(), nil
	}
	return schemas.DecodeResume(raw)
}

func decodeKeywords(raw json.RawMessage) (*types.KeywordSet, error) {
	if isAbsent(raw) {
		return types.NewKeywordSet(), nil
	}
	return schemas.DecodeKeywords(raw)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "message": "ATS optimizer API is running"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, &ErrNotFound{Path: r.URL.Path})
}

func (s *Server) handleExtractKeywords(w http.ResponseWriter, r *http.Request) {
	var req ExtractKeywordsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	ks, err := s.svc.ExtractKeywords(r.Context(), req.JobDescription)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "keywords": ks})
}

// decodeResumeRequest decodes and schema-validates both documents.
func decodeResumeRequest(w http.ResponseWriter, r *http.Request) (*types.StructuredResume, *types.KeywordSet, error) {
	var req ResumeRequest
	if err := decodeRequest(w, r, &req); err != nil {
		return nil, nil, err
	}
	resume, err := decodeResume(req.ResumeData)
	if err != nil {
		return nil, nil, err
	}
	ks, err := decodeKeywords(req.JobKeywords)
	if err != nil {
		return nil, nil, err
	}
	return resume, ks, nil
}

func (s *Server) handleCalculateScore(w http.ResponseWriter, r *http.Request) {
	resume, ks, err := decodeResumeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	score, err := s.svc.CalculateScore(r.Context(), resume, ks)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "score": score})
}

func (s *Server) handleOptimizeResume(w http.ResponseWriter, r *http.Request) {
	resume, ks, err := decodeResumeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.svc.OptimizeResume(r.Context(), resume, ks)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"optimizedResume": out.OptimizedResume,
		"score":           out.Score,
		"comparison":      out.Comparison,
	})
}

func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	var req ParseTextRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.parseAndRespond(w, r, req.Text)
}

func (s *Server) parseAndRespond(w http.ResponseWriter, r *http.Request, text string) {
	parsed, err := s.svc.ParseResumeText(r.Context(), ingestion.NormalizeResumeText(text))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "parsedResume": parsed})
}

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > MaxUploadSize {
		s.writeError(w, r, &http.MaxBytesError{Limit: MaxUploadSize})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			s.writeError(w, r, err)
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			s.writeError(w, r, &ErrValidation{Field: "file", Message: "no file uploaded"})
		default:
			s.writeError(w, r, &ErrValidation{Field: "file", Message: err.Error()})
		}
		return
	}
	defer file.Close()

	if err := ingestion.CheckUploadName(header.Filename); err != nil {
		if errors.Is(err, ingestion.ErrUnsupportedFormat) {
			err = &ErrUnsupportedMedia{Filename: header.Filename, Cause: err}
		}
		s.writeError(w, r, err)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	s.log.WithField("filename", header.Filename).WithField("bytes", len(content)).Debug("resume uploaded")
	s.parseAndRespond(w, r, string(content))
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req SuggestionsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	ks, err := decodeKeywords(req.JobKeywords)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	suggestions, err := s.svc.GetSuggestions(r.Context(), req.ResumeSkills, ks)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "suggestions": suggestions})
}

func (s *Server) handleFormatDisplay(w http.ResponseWriter, r *http.Request) {
	var req FormatDisplayRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	resume, err := decodeResume(req.ResumeData)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "display": generator.FormatForDisplay(resume)})
}

// handleAnalyzeStream runs a full analysis and streams each step as an SSE
// "step" event, ending with "complete" or "error".
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	// A literal null satisfies required_without, so check the resume here.
	if req.ResumeText == "" && isAbsent(req.ResumeData) {
		s.writeError(w, r, &ErrValidation{Field: "resumeText", Message: "resumeText or resumeData is required"})
		return
	}

	opts := pipeline.RunOptions{
		JobURL:     req.JobURL,
		JobText:    req.JobDescription,
		ResumeText: req.ResumeText,
		UseBrowser: req.UseBrowser,
		Service:    s.svc,
		Ingester:   s.ingester,
		Log:        s.log,
	}
	if !isAbsent(req.ResumeData) {
		resume, err := schemas.DecodeResume(req.ResumeData)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Resume = resume
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log := s.log.WithField("request_id", middleware.GetRequestID(r.Context()))
	log.Info("starting streaming analysis")

	opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			log.WithError(err).Warn("failed to write SSE event")
		}
	}

	result, err := pipeline.Run(r.Context(), opts)
	if err != nil {
		log.WithError(err).Warn("streaming analysis failed")
		sse.WriteError(HTTPStatus(err), err.Error())
		return
	}

	if err := sse.WriteEvent("complete", map[string]any{"success": true, "result": result}); err != nil {
		log.WithError(err).Warn("failed to write SSE completion")
		return
	}
	log.WithField("run_id", result.RunID).Info("streaming analysis completed")
}
