// Package schemas embeds the JSON Schema documents for the records exchanged
// by the CLI and the REST API.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names.
const (
	Resume   = "resume.schema.json"
	Keywords = "keywords.schema.json"
	Score    = "score.schema.json"
)

// Names lists every embedded schema.
func Names() []string {
	return []string{Resume, Keywords, Score}
}
