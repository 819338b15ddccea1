// Package remote is a client for the REST API of another ats_agent server.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/ats-optimizer/internal/service"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// DefaultTimeout bounds every remote call.
const DefaultTimeout = 10 * time.Second

// StatusError is a response that was not successful: either a non-2xx
// status or a body with success=false.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.StatusCode, e.Message)
}

// Client calls the /api endpoints of a remote server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ service.Service = (*Client)(nil)

// NewClient creates a client for the server at baseURL, e.g.
// "http://localhost:5000". A trailing "/api" is accepted.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	base := strings.TrimSuffix(strings.TrimSuffix(baseURL, "/"), "/api")
	return &Client{baseURL: base + "/api", httpClient: httpClient}
}

// envelope is the common response shape; payload fields are decoded
// separately into the caller's target.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode/100 != 2 {
			return &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode/100 != 2 || !env.Success {
		return &StatusError{StatusCode: resp.StatusCode, Message: env.Error}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// Health reports whether the server answers its health check.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// ExtractKeywords implements service.Service.
func (c *Client) ExtractKeywords(ctx context.Context, jobDescription string) (*types.KeywordSet, error) {
	var out struct {
		Keywords *types.KeywordSet `json:"keywords"`
	}
	if err := c.post(ctx, "/extract-keywords", map[string]string{"jobDescription": jobDescription}, &out); err != nil {
		return nil, err
	}
	if out.Keywords == nil {
		return nil, fmt.Errorf("response has no keywords")
	}
	out.Keywords.EnsureDefaults()
	return out.Keywords, nil
}

type resumeRequest struct {
	ResumeData  *types.StructuredResume `json:"resumeData"`
	JobKeywords *types.KeywordSet       `json:"jobKeywords"`
}

// CalculateScore implements service.Service.
func (c *Client) CalculateScore(ctx context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*types.ScoreResult, error) {
	var out struct {
		Score *types.ScoreResult `json:"score"`
	}
	if err := c.post(ctx, "/calculate-score", resumeRequest{r, ks}, &out); err != nil {
		return nil, err
	}
	if out.Score == nil {
		return nil, fmt.Errorf("response has no score")
	}
	return out.Score, nil
}

// OptimizeResume implements service.Service.
func (c *Client) OptimizeResume(ctx context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*service.Optimized, error) {
	var out service.Optimized
	if err := c.post(ctx, "/optimize-resume", resumeRequest{r, ks}, &out); err != nil {
		return nil, err
	}
	if out.OptimizedResume == nil {
		return nil, fmt.Errorf("response has no optimized resume")
	}
	return &out, nil
}

// ParseResumeText implements service.Service.
func (c *Client) ParseResumeText(ctx context.Context, text string) (*types.StructuredResume, error) {
	var out struct {
		ParsedResume *types.StructuredResume `json:"parsedResume"`
	}
	if err := c.post(ctx, "/parse-text", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	if out.ParsedResume == nil {
		return nil, fmt.Errorf("response has no parsed resume")
	}
	return out.ParsedResume, nil
}

// GetSuggestions implements service.Service.
func (c *Client) GetSuggestions(ctx context.Context, resumeSkills []string, ks *types.KeywordSet) ([]types.Suggestion, error) {
	if resumeSkills == nil {
		resumeSkills = []string{}
	}
	var out struct {
		Suggestions []types.Suggestion `json:"suggestions"`
	}
	body := struct {
		ResumeSkills []string          `json:"resumeSkills"`
		JobKeywords  *types.KeywordSet `json:"jobKeywords"`
	}{resumeSkills, ks}
	if err := c.post(ctx, "/suggestions", body, &out); err != nil {
		return nil, err
	}
	if out.Suggestions == nil {
		out.Suggestions = []types.Suggestion{}
	}
	return out.Suggestions, nil
}

// UploadResume sends a resume file as multipart form data and returns the
// parsed resume.
func (c *Client) UploadResume(ctx context.Context, filename string, content io.Reader) (*types.StructuredResume, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-resume", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		ParsedResume *types.StructuredResume `json:"parsedResume"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if out.ParsedResume == nil {
		return nil, fmt.Errorf("response has no parsed resume")
	}
	return out.ParsedResume, nil
}
