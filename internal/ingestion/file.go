package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrUnsupportedFormat is returned for binary document formats, which
	// are not parsed.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrInvalidFileType is returned for any other extension.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrNoFileName is returned for an upload without a file name.
	ErrNoFileName = errors.New("no file selected")
)

// AllowedExtensions are the upload types read as plain text.
var AllowedExtensions = []string{".txt", ".md"}

var binaryExtensions = []string{".pdf", ".docx", ".doc"}

// CheckUploadName validates an uploaded file name by extension.
func CheckUploadName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNoFileName
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range AllowedExtensions {
		if ext == a {
			return nil
		}
	}
	for _, b := range binaryExtensions {
		if ext == b {
			return fmt.Errorf("%w: %s files cannot be parsed, upload .txt or .md", ErrUnsupportedFormat, ext)
		}
	}
	return fmt.Errorf("%w: allowed types: %s", ErrInvalidFileType, strings.Join(AllowedExtensions, ", "))
}

// IngestFromFile reads a text file and returns its cleaned text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := CleanText(string(content))
	meta := NewMetadata(cleaned, "file://"+filepath.ToSlash(path), time.Now())
	return cleaned, meta, nil
}

// ReadResumeFile reads a resume text file for the parser. Only the upload
// extension check and line-ending normalization are applied, so the parser
// sees the author's layout.
func ReadResumeFile(path string) (string, error) {
	if err := CheckUploadName(path); err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	return NormalizeResumeText(string(content)), nil
}

// NormalizeResumeText applies NFKC folding and LF line endings only.
func NormalizeResumeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(normNFKC(s), "\r", "\n")
}
