package parsing

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Cleanup normalises a parsed resume in place: top-level strings are trimmed,
// technical and soft skill lists are deduplicated and rejoined with ", ", and
// every list is made non-nil. RawText is left untouched.
func Cleanup(r *types.StructuredResume) {
	if r == nil {
		return
	}

	for _, f := range []*string{
		&r.FullName, &r.Email, &r.Phone, &r.Location, &r.LinkedIn, &r.Portfolio,
		&r.Summary, &r.TechnicalSkills, &r.SoftSkills, &r.Tools,
	} {
		*f = strings.TrimSpace(*f)
	}

	r.TechnicalSkills = dedupeSkills(r.TechnicalSkills)
	r.SoftSkills = dedupeSkills(r.SoftSkills)

	r.EnsureDefaults()
}

// dedupeSkills splits on commas, trims, drops empty entries and exact
// duplicates (first occurrence wins) and rejoins with ", ".
func dedupeSkills(s string) string {
	if s == "" {
		return ""
	}
	seen := make(map[string]bool)
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return strings.Join(out, ", ")
}
