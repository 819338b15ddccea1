package rendering

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// RenderText renders d as ATS-friendly plain text: upper-case section
// headings, one fact per line and "-" bullets.
func RenderText(d types.DisplayResume) (string, error) {
	tmpl, err := parseTemplate("", "templates/resume.txt", "{{", "}}")
	if err != nil {
		return "", err
	}
	out, err := execute(tmpl, buildDocument(d, identity), FormatText, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out) + "\n", nil
}
