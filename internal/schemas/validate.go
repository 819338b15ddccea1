// Package schemas validates resume, keyword-set and score documents against
// the embedded JSON Schemas and decodes them into their Go records.
package schemas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/ats-optimizer/internal/types"
	docs "github.com/jonathan/ats-optimizer/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError is a single failure at a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:", ve.Schema)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError is a failure to load or compile a schema, or to read the
// document being validated.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	compiledMu sync.Mutex
	compiled   = map[string]*gojsonschema.Schema{}
)

// load compiles an embedded schema once.
func load(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}
	raw, err := docs.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema not embedded", Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	compiled[name] = s
	return s, nil
}

// Validate checks a JSON document against the named embedded schema.
func Validate(name string, document []byte) error {
	s, err := load(name)
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "document is not valid JSON", Cause: err}
	}
	return toValidationError(name, result)
}

// ValidateValue marshals v and validates it against the named schema.
func ValidateValue(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", name, err)
	}
	return Validate(name, data)
}

// ValidateJSON validates a JSON file against a JSON Schema file on disk.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	jsonAbs, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	if _, err := os.Stat(schemaAbs); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbs)
	}
	if _, err := os.Stat(jsonAbs); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbs)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewReferenceLoader("file://"+filepath.ToSlash(schemaAbs)),
		gojsonschema.NewReferenceLoader("file://"+filepath.ToSlash(jsonAbs)),
	)
	if err != nil {
		return &SchemaLoadError{Path: schemaAbs, Message: "schema validation failed during load", Cause: err}
	}
	return toValidationError(filepath.Base(schemaAbs), result)
}

// ValidateFile validates a JSON file against the named embedded schema.
func ValidateFile(name, jsonPath string) error {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}
	return Validate(name, data)
}

func toValidationError(name string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{Schema: name, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

// DecodeResume validates data against the resume schema and decodes it with
// every list defaulted to empty.
func DecodeResume(data []byte) (*types.StructuredResume, error) {
	if err := Validate(docs.Resume, data); err != nil {
		return nil, err
	}
	r := &types.StructuredResume{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	r.EnsureDefaults()
	return r, nil
}

// DecodeKeywords validates data against the keyword-set schema and decodes it.
// Missing lists decode as empty. A document whose "all" list is absent gets
// it rebuilt from technical, soft and requirements.
func DecodeKeywords(data []byte) (*types.KeywordSet, error) {
	if err := Validate(docs.Keywords, data); err != nil {
		return nil, err
	}
	ks := types.NewKeywordSet()
	if err := json.Unmarshal(data, ks); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	ks.EnsureDefaults()
	if len(ks.All) == 0 && !bytes.Contains(data, []byte(`"all"`)) {
		ks.All = ks.Union()
	}
	return ks, nil
}
