package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/fetch"
	"github.com/jonathan/ats-optimizer/internal/logging"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidURL is returned when a URL is malformed or not http(s).
	ErrInvalidURL = errors.New("invalid URL")
	// ErrHTTPRequestFailed is returned when the page cannot be fetched.
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text can be extracted.
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// Ingester fetches job postings from the web.
type Ingester struct {
	Fetch *fetch.Options
	// Renderer, when set, re-renders pages whose static HTML yields too
	// little text.
	Renderer fetch.Renderer
	Log      *logrus.Logger
	Now      func() time.Time
}

// IngestFromURL fetches a posting with a default Ingester. With useBrowser a
// headless browser is tried for client-rendered pages; verbose logs each
// step at debug level to stderr.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, *Metadata, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	in := &Ingester{Log: logging.New(level, logging.FormatText)}
	if useBrowser {
		in.Renderer = fetch.NewBrowserRenderer(in.Log)
	}
	return in.IngestFromURL(ctx, urlStr)
}

// IngestFromURL fetches urlStr, extracts the posting text with the
// selectors of its job board, cleans it and returns it with metadata.
func (in *Ingester) IngestFromURL(ctx context.Context, urlStr string) (string, *Metadata, error) {
	log := logging.OrDiscard(in.Log).WithField("url", urlStr)

	if err := fetch.ValidateURL(urlStr); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	platform := fetch.DetectPlatform(urlStr)
	log = log.WithField("platform", platform)

	result, err := fetch.URL(ctx, urlStr, in.Fetch)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.WithField("bytes", len(result.HTML)).Debug("fetched page")

	content := platform.ContentSelectors()
	noise := platform.NoiseSelectors()

	page, err := fetch.ExtractPage(result.HTML, content, noise...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	log.WithField("chars", utf8.RuneCountInString(page.Text)).Debug("extracted text")

	if in.Renderer != nil && fetch.ShouldUseBrowser(page.Text) {
		log.Debug("content too short, rendering in browser")
		page = in.rerender(ctx, log, urlStr, page, content, noise)
	}

	cleaned := CleanText(page.Text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%w: page has no readable text", ErrContentExtractionFailed)
	}

	now := time.Now
	if in.Now != nil {
		now = in.Now
	}
	meta := NewMetadata(cleaned, urlStr, now())
	meta.Platform = string(platform)
	meta.Title = page.Title

	log.WithField("chars", utf8.RuneCountInString(cleaned)).Info("ingested job posting")
	return cleaned, meta, nil
}

// rerender returns the browser-rendered page, or the original page when
// rendering or extraction fails.
func (in *Ingester) rerender(ctx context.Context, log *logrus.Entry, urlStr string, page *fetch.Page, content, noise []string) *fetch.Page {
	html, err := in.Renderer.Render(ctx, urlStr)
	if err != nil {
		log.WithError(err).Warn("browser rendering failed, using static HTML")
		return page
	}
	rendered, err := fetch.ExtractPage(html, content, noise...)
	if err != nil {
		log.WithError(err).Warn("browser content extraction failed, using static HTML")
		return page
	}
	if rendered.Title == "" {
		rendered.Title = page.Title
	}
	return rendered
}
