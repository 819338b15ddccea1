package fetch

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// globalNoise is removed from every page before extraction.
const globalNoise = "nav, footer, header, script, style, noscript, svg, iframe, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// blockElements start and end on their own line in extracted text.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "main": true,
	"li": true, "ul": true, "ol": true, "tr": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "dd": true, "dt": true, "dl": true,
}

// Page is the readable part of an HTML document.
type Page struct {
	Title string
	Text  string
}

// ExtractMainText returns the readable text of html; see ExtractPage.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	page, err := ExtractPage(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", err
	}
	return page.Text, nil
}

// ExtractPage removes noise elements, picks the first element matching one
// of contentSelectors (falling back to body) and returns its text with one
// line per block element, plus the page title.
func ExtractPage(html string, contentSelectors []string, noiseSelectors ...string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find(globalNoise).Remove()
	if noise := strings.Join(noiseSelectors, ", "); noise != "" {
		doc.Find(noise).Remove()
	}

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return &Page{
		Title: strings.Join(strings.Fields(title), " "),
		Text:  blockText(main),
	}, nil
}

// JobPostingSelectors are tried on pages from unrecognised job boards.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			name := goquery.NodeName(c)
			switch {
			case name == "#text":
				b.WriteString(strings.Map(spaceOnly, c.Text()))
			case name == "br":
				b.WriteString("\n")
			case blockElements[name]:
				b.WriteString("\n")
				walk(c)
				b.WriteString("\n")
			default:
				walk(c)
			}
		})
	}
	walk(sel)
	return cleanWhitespace(b.String())
}

// spaceOnly turns line breaks inside text nodes into spaces; only block
// boundaries start a new line.
func spaceOnly(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// cleanWhitespace collapses runs of spaces inside each line and drops blank lines.
func cleanWhitespace(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
