package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/ats-optimizer/internal/types"
)

//go:embed templates/*
var templateFS embed.FS

// LaTeX templates use [[ ]] so that TeX braces never need escaping.
const (
	latexLeftDelim  = "[["
	latexRightDelim = "]]"
)

// Format names an export format.
type Format string

// Supported export formats.
const (
	FormatText  Format = "text"
	FormatLaTeX Format = "latex"
)

// Render dispatches to RenderText or RenderLaTeX. templatePath only applies
// to LaTeX.
func Render(d types.DisplayResume, format Format, templatePath string) (string, error) {
	switch format {
	case FormatText, "":
		return RenderText(d)
	case FormatLaTeX:
		return RenderLaTeX(d, templatePath)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderLaTeX renders d as a LaTeX document. An empty templatePath selects the
// embedded default template. Templates are executed with [[ ]] delimiters and
// receive a *Document whose text is already escaped.
func RenderLaTeX(d types.DisplayResume, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath, "templates/resume.tex", latexLeftDelim, latexRightDelim)
	if err != nil {
		return "", err
	}
	return execute(tmpl, buildDocument(d, EscapeLaTeX), FormatLaTeX, templatePath)
}

// parseTemplate reads templatePath, or the embedded file when the path is
// empty, and parses it with the given delimiters.
func parseTemplate(templatePath, embedded, left, right string) (*template.Template, error) {
	var content []byte
	var err error
	if templatePath == "" {
		content, err = templateFS.ReadFile(embedded)
	} else {
		content, err = os.ReadFile(templatePath)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{Path: templatePath, Message: "template file not found", Cause: err}
		}
		return nil, &TemplateError{Path: templatePath, Message: "failed to read template file", Cause: err}
	}

	tmpl, err := template.New("resume").
		Delims(left, right).
		Funcs(template.FuncMap{
			"escape": EscapeLaTeX,
			"upper":  strings.ToUpper,
		}).
		Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Path: templatePath, Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, doc *Document, format Format, templatePath string) (string, error) {
	var out strings.Builder
	if err := tmpl.Execute(&out, doc); err != nil {
		return "", &RenderError{
			Format:  format,
			Message: "failed to execute template",
			Cause:   &TemplateError{Path: templatePath, Message: "execution failed", Cause: err},
		}
	}
	return out.String(), nil
}
