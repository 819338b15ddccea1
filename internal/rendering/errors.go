// Package rendering exports a display projection as ATS-friendly plain text
// or as a LaTeX document.
package rendering

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned by Render for a format it does not support.
var ErrUnknownFormat = errors.New("unknown render format")

// TemplateError represents a failure to load, parse or execute a template.
type TemplateError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	name := e.Path
	if name == "" {
		name = "embedded"
	}
	if e.Cause != nil {
		return fmt.Sprintf("template %s: %s: %v", name, e.Message, e.Cause)
	}
	return fmt.Sprintf("template %s: %s", name, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure to produce a document in a given format.
type RenderError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("render %s: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
