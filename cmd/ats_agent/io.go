package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/observability"
	"github.com/jonathan/ats-optimizer/internal/schemas"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// writeJSON writes v as indented JSON to outPath, or stdout when it is empty.
func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return writeOutput(append(data, '\n'))
}

func writeOutput(data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.WithField("path", outPath).Debug("wrote output")
	return nil
}

// printer returns a stderr printer in verbose mode, or nil.
func printer() *observability.Printer {
	if cfg == nil || !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stderr)
}

func readJSONFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// loadResume reads a resume from a .json file validated against the resume
// schema, or parses a .txt/.md file.
func loadResume(ctx context.Context, path string) (*types.StructuredResume, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := readJSONFile(path)
		if err != nil {
			return nil, err
		}
		return schemas.DecodeResume(data)
	}
	text, err := ingestion.ReadResumeFile(path)
	if err != nil {
		return nil, err
	}
	return svc.ParseResumeText(ctx, text)
}

// loadKeywords reads a keyword set from a JSON file, or extracts one from a
// job posting file or URL. Exactly one source must be set.
func loadKeywords(ctx context.Context, keywordsPath, jobPath, jobURL string) (*types.KeywordSet, error) {
	set := 0
	for _, s := range []string{keywordsPath, jobPath, jobURL} {
		if s != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return nil, fmt.Errorf("one of --keywords, --job or --url must be provided")
	case set > 1:
		return nil, fmt.Errorf("--keywords, --job and --url are mutually exclusive; provide only one")
	}

	if keywordsPath != "" {
		data, err := readJSONFile(keywordsPath)
		if err != nil {
			return nil, err
		}
		return schemas.DecodeKeywords(data)
	}

	text, err := readJob(ctx, jobPath, jobURL)
	if err != nil {
		return nil, err
	}
	return svc.ExtractKeywords(ctx, text)
}

func readJob(ctx context.Context, jobPath, jobURL string) (string, error) {
	if jobPath != "" {
		text, _, err := ingestion.IngestFromFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to ingest from file: %w", err)
		}
		return text, nil
	}
	text, _, err := ingestion.IngestFromURL(ctx, jobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return "", fmt.Errorf("failed to ingest from URL: %w", err)
	}
	return text, nil
}
