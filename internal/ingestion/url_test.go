package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	html  string
	err   error
	calls int
}

func (f *fakeRenderer) Render(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.html, f.err
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	for _, u := range []string{"", "not-a-url", "example.com", "http://"} {
		t.Run(u, func(t *testing.T) {
			_, _, err := IngestFromURL(context.Background(), u, false, false)
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestIngester_Success(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html><head><title>Backend Engineer</title></head>
<body>
<nav>Nav</nav>
<main>
<h1>Backend Engineer</h1>
<p>We need 5+ years of Go and   Kubernetes.</p>
<form>Apply now</form>
</main>
<footer>Footer</footer>
</body></html>`)

	fixed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in := &Ingester{Now: func() time.Time { return fixed }}

	text, meta, err := in.IngestFromURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer\nWe need 5+ years of Go and Kubernetes.", text)
	assert.Equal(t, server.URL, meta.Source)
	assert.Equal(t, "unknown", meta.Platform)
	assert.Equal(t, "Backend Engineer", meta.Title)
	assert.Equal(t, "2024-03-01T00:00:00Z", meta.Timestamp)
	assert.Equal(t, computeHash(text), meta.Hash)
}

func TestIngester_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, _, err := (&Ingester{}).IngestFromURL(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngester_EmptyPage(t *testing.T) {
	server := serveHTML(t, `<html><body><script>render()</script></body></html>`)

	_, _, err := (&Ingester{}).IngestFromURL(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrContentExtractionFailed)
}

func TestIngester_BrowserFallback(t *testing.T) {
	server := serveHTML(t, `<html><body><div id="root">Loading...</div></body></html>`)
	long := strings.Repeat("Experience with Go and PostgreSQL. ", 20)
	r := &fakeRenderer{html: `<html><body><main>` + long + `</main></body></html>`}

	text, _, err := (&Ingester{Renderer: r}).IngestFromURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, r.calls)
	assert.Equal(t, strings.TrimSpace(long), text)
}

func TestIngester_BrowserFailureKeepsStaticText(t *testing.T) {
	server := serveHTML(t, `<html><body><p>Short posting: Go</p></body></html>`)
	r := &fakeRenderer{err: errors.New("chrome not installed")}

	text, _, err := (&Ingester{Renderer: r}).IngestFromURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, r.calls)
	assert.Equal(t, "Short posting: Go", text)
}

func TestIngester_NoRendererForLongPages(t *testing.T) {
	server := serveHTML(t, `<html><body><main>`+strings.Repeat("Go developer needed. ", 40)+`</main></body></html>`)
	r := &fakeRenderer{}

	_, _, err := (&Ingester{Renderer: r}).IngestFromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Zero(t, r.calls)
}
