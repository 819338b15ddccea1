// Package ingestion turns job postings and resume uploads into clean text.
package ingestion

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\p{Zs}]+`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
	bulletStart = regexp.MustCompile(`^[-*•·▪]\s`)
)

// CleanText normalizes text while preserving its line structure: NFKC
// compatibility folding, LF line endings, single spaces inside lines and at
// most one blank line between blocks. Markdown headings lose their indent;
// bullets keep theirs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = normNFKC(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	body := innerSpace.ReplaceAllString(trimmed, " ")
	if strings.HasPrefix(trimmed, "#") {
		return body
	}

	indent := len(line) - len(trimmed)
	if bulletStart.MatchString(trimmed) && indent > 0 {
		return strings.Repeat(" ", indent) + body
	}
	return body
}

// normNFKC folds compatibility characters: ligatures, full-width forms and
// no-break spaces become their plain equivalents.
func normNFKC(s string) string {
	return norm.NFKC.String(s)
}
