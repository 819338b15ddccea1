package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes one ingested document.
type Metadata struct {
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"` // RFC3339, UTC
	Hash      string `json:"hash"`      // SHA-256 hex of the cleaned text
	Platform  string `json:"platform,omitempty"`
	Title     string `json:"title,omitempty"`
}

// NewMetadata stamps content from source at now.
func NewMetadata(content, source string, now time.Time) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: now.UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ToJSON marshals Metadata as indented JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return data, nil
}
