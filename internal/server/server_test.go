package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-optimizer/internal/logging"
	"github.com/jonathan/ats-optimizer/internal/server/middleware"
	"github.com/jonathan/ats-optimizer/internal/server/ratelimit"
)

const (
	sampleJob = "Senior Backend Engineer\n\nWe need Go, AWS and Docker experience. 5+ years of experience. Strong leadership and communication."

	sampleResume = "Jane Doe\njane@example.com | 555-123-4567\n\nEXPERIENCE\nSoftware Engineer | Acme Corp | Jan 2019 - Present\n• Built billing services in Go used by 500 customers\n• worked on deployment tooling\n\nEDUCATION\nB.S. Computer Science, State University, 2018\n\nSKILLS\nGo, SQL"
)

func newTestServer(t *testing.T, rl *ratelimit.Config) http.Handler {
	t.Helper()
	if rl == nil {
		rl = &ratelimit.Config{Enabled: false}
	}
	s := New(Config{Port: 0, Log: logging.Discard(), RateLimit: rl})
	t.Cleanup(s.rateLimiter.Stop)
	return s.Handler()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["message"])
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/calculate-score", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestNotFound(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "not found: /api/unknown", body["error"])
}

func TestExtractKeywords(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/extract-keywords", map[string]string{"jobDescription": sampleJob})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Success  bool `json:"success"`
		Keywords struct {
			Technical []string `json:"technical"`
			Soft      []string `json:"soft"`
		} `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Contains(t, out.Keywords.Technical, "AWS")
	assert.Contains(t, out.Keywords.Technical, "Docker")
}

func TestExtractKeywords_MissingDescription(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/extract-keywords", map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
}

func TestInvalidJSONBody(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/extract-keywords", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "invalid JSON")
}

func TestCalculateScore(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name     string
		body     any
		wantCode int
	}{
		{
			name: "full documents",
			body: map[string]any{
				"resumeData": map[string]any{
					"fullName": "Jane Doe",
					"email":    "jane@example.com",
					"summary":  "Backend engineer building Go services on AWS.",
					"experience": []map[string]any{{
						"title":   "Engineer",
						"company": "Acme",
						"bullets": []string{"Built Go services handling 1M requests per day"},
					}},
					"technicalSkills": "Go, AWS",
				},
				"jobKeywords": map[string]any{"technical": []string{"Go", "AWS", "Docker"}},
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing documents default to empty",
			body:     map[string]any{},
			wantCode: http.StatusOK,
		},
		{
			name:     "resume fails schema",
			body:     map[string]any{"resumeData": map[string]any{"fullName": 42}},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h, "/api/calculate-score", tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())

			body := decodeBody(t, w)
			if tt.wantCode != http.StatusOK {
				assert.Equal(t, false, body["success"])
				assert.Contains(t, body["error"], "fullName")
				return
			}
			assert.Equal(t, true, body["success"])
			score, ok := body["score"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, score, "overall")
			assert.Contains(t, score, "breakdown")
		})
	}
}

func TestOptimizeResume(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/optimize-resume", map[string]any{
		"resumeData": map[string]any{
			"fullName": "Jane Doe",
			"experience": []map[string]any{{
				"title":   "Engineer",
				"company": "Acme",
				"bullets": []string{"worked on deployment tooling"},
			}},
		},
		"jobKeywords": map[string]any{"technical": []string{"Go", "Docker"}, "soft": []string{"Leadership"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "optimizedResume")
	assert.Contains(t, body, "score")

	cmp, ok := body["comparison"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, cmp, "beforeScore")
	assert.Contains(t, cmp, "afterScore")
}

func TestParseText(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantErr  string
	}{
		{"parsed", map[string]string{"text": sampleResume}, http.StatusOK, ""},
		{"missing text", map[string]string{}, http.StatusBadRequest, "validation error: text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h, "/api/parse-text", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			body := decodeBody(t, w)
			if tt.wantErr != "" {
				assert.Contains(t, body["error"], tt.wantErr)
				return
			}
			parsed, ok := body["parsedResume"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Jane Doe", parsed["fullName"])
			assert.Equal(t, "jane@example.com", parsed["email"])
		})
	}
}

func uploadRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadResume(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name     string
		field    string
		filename string
		wantCode int
		wantErr  string
	}{
		{"text file", "file", "resume.txt", http.StatusOK, ""},
		{"markdown file", "file", "resume.md", http.StatusOK, ""},
		{"pdf rejected", "file", "resume.pdf", http.StatusUnsupportedMediaType, "unsupported file"},
		{"docx rejected", "file", "resume.docx", http.StatusUnsupportedMediaType, "unsupported file"},
		{"unknown extension", "file", "resume.exe", http.StatusBadRequest, "invalid file type"},
		{"wrong field", "document", "resume.txt", http.StatusBadRequest, "no file uploaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, uploadRequest(t, tt.field, tt.filename, sampleResume))

			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
			body := decodeBody(t, w)
			if tt.wantErr != "" {
				assert.Equal(t, false, body["success"])
				assert.Contains(t, body["error"], tt.wantErr)
				return
			}
			assert.Equal(t, true, body["success"])
			parsed, ok := body["parsedResume"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Jane Doe", parsed["fullName"])
		})
	}
}

func TestUploadResume_TooLarge(t *testing.T) {
	h := newTestServer(t, nil)

	big := strings.Repeat("a", MaxUploadSize+1)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, uploadRequest(t, "file", "resume.txt", big))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSuggestions(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/suggestions", map[string]any{
		"resumeSkills": []string{"go"},
		"jobKeywords":  map[string]any{"technical": []string{"Go", "Docker"}, "soft": []string{"Leadership"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Success     bool `json:"success"`
		Suggestions []struct {
			Skill    string `json:"skill"`
			Type     string `json:"type"`
			Priority string `json:"priority"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.Success)
	require.Len(t, out.Suggestions, 2)
	assert.Equal(t, "Docker", out.Suggestions[0].Skill)
	assert.Equal(t, "technical", out.Suggestions[0].Type)
	assert.Equal(t, "Leadership", out.Suggestions[1].Skill)
	assert.Equal(t, "soft", out.Suggestions[1].Type)
}

func TestSuggestions_EmptyIsArray(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/suggestions", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"suggestions":[]`)
}

func TestFormatDisplay(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/format-display", map[string]any{
		"resumeData": map[string]any{"fullName": "Jane Doe", "technicalSkills": "Go, SQL"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	display, ok := body["display"].(map[string]any)
	require.True(t, ok)
	header, ok := display["header"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", header["name"])
}

// readEvents parses an SSE stream into event names and raw data.
func readEvents(t *testing.T, body string) (names []string, data []string) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			names = append(names, strings.TrimPrefix(line, "event: "))
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}
	require.NoError(t, sc.Err())
	return names, data
}

func TestAnalyzeStream(t *testing.T) {
	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/analyze/stream", map[string]string{
		"jobDescription": sampleJob,
		"resumeText":     sampleResume,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	names, data := readEvents(t, w.Body.String())
	require.NotEmpty(t, names)
	assert.Equal(t, "complete", names[len(names)-1])
	assert.Contains(t, names, "step")

	var steps []string
	for i, name := range names[:len(names)-1] {
		var ev struct {
			Step  string `json:"step"`
			RunID string `json:"run_id"`
		}
		require.NoError(t, json.Unmarshal([]byte(data[i]), &ev))
		assert.Equal(t, "step", name)
		assert.NotEmpty(t, ev.RunID)
		steps = append(steps, ev.Step)
	}
	assert.Contains(t, steps, "score_resume")
	assert.Contains(t, steps, "display")

	var done struct {
		Success bool `json:"success"`
		Result  struct {
			Resume struct {
				FullName string `json:"fullName"`
			} `json:"resume"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(data[len(data)-1]), &done))
	assert.True(t, done.Success)
	assert.Equal(t, "Jane Doe", done.Result.Resume.FullName)
}

func TestAnalyzeStream_Validation(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"no job", map[string]any{"resumeText": sampleResume}},
		{"no resume", map[string]any{"jobDescription": sampleJob}},
		{"null resume data", map[string]any{"jobDescription": sampleJob, "resumeData": nil}},
		{"null resume data and empty text", map[string]any{"jobDescription": sampleJob, "resumeText": "", "resumeData": nil}},
		{"bad url", map[string]any{"jobUrl": "not-a-url", "resumeText": sampleResume}},
		{"both job sources", map[string]any{"jobDescription": sampleJob, "jobUrl": "https://example.com/job", "resumeText": sampleResume}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h, "/api/analyze/stream", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestAnalyzeStream_PipelineErrorEvent(t *testing.T) {
	board := httptest.NewServer(http.NotFoundHandler())
	defer board.Close()

	h := newTestServer(t, nil)

	w := postJSON(t, h, "/api/analyze/stream", map[string]string{
		"jobUrl":     board.URL + "/jobs/1",
		"resumeText": sampleResume,
	})
	require.Equal(t, http.StatusOK, w.Code)

	names, data := readEvents(t, w.Body.String())
	require.NotEmpty(t, names)
	assert.Equal(t, "error", names[len(names)-1])

	var ev struct {
		Success bool   `json:"success"`
		Status  int    `json:"status"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(data[len(data)-1]), &ev))
	assert.False(t, ev.Success)
	assert.Equal(t, http.StatusBadGateway, ev.Status)
	assert.Contains(t, ev.Error, "job ingestion failed")
}

func TestRateLimitMiddleware(t *testing.T) {
	h := newTestServer(t, &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	})

	send := func() *httptest.ResponseRecorder {
		w := postJSON(t, h, "/api/extract-keywords", map[string]string{"jobDescription": "Go"})
		return w
	}

	for range 2 {
		w := send()
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	body := decodeBody(t, w)
	assert.Equal(t, "rate_limit_exceeded", body["error"])
	assert.Equal(t, false, body["success"])

	health := httptest.NewRecorder()
	h.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestLoggingRecorderFlushes(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w}

	var _ http.Flusher = rec
	rec.Flush()
	assert.True(t, w.Flushed)

	_, err := rec.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.status)
	assert.Equal(t, w, rec.Unwrap())
}

func TestExtractClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", extractClientID(req))

	req.RemoteAddr = "unix-socket"
	assert.Equal(t, "unix-socket", extractClientID(req))
}
