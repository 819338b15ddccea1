package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// MinContentLength is the extracted text length below which a page is
// assumed to be rendered client-side.
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is too short to be the
// real posting.
func ShouldUseBrowser(extractedText string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(extractedText)) < MinContentLength
}

// Renderer returns the HTML of a page after client-side rendering.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// BrowserRenderer renders pages in headless Chrome. Chrome or Chromium must
// be installed.
type BrowserRenderer struct {
	Timeout time.Duration
	// Settle is how long to wait after the body is ready.
	Settle time.Duration
	Log    *logrus.Logger
}

// NewBrowserRenderer returns a renderer with a 30s timeout and a 3s settle time.
func NewBrowserRenderer(log *logrus.Logger) *BrowserRenderer {
	return &BrowserRenderer{Timeout: DefaultTimeout, Settle: 3 * time.Second, Log: log}
}

// Render implements Renderer.
func (b *BrowserRenderer) Render(ctx context.Context, url string) (string, error) {
	log := b.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	entry := log.WithField("url", url)
	entry.Debug("starting headless browser")

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(b.Settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Cookie banners are optional; a missing button is not an error.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible, chromedp.AtLeast(0)).Do(ctx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	entry.WithField("bytes", len(html)).Debug("browser rendered page")
	return html, nil
}
