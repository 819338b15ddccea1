package keywords

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// maxSuggestions caps GetSuggestions.
const maxSuggestions = 10

// FindMatches splits ks.All into keywords present in resumeText and keywords
// absent from it. Matching is case-insensitive substring containment.
func FindMatches(resumeText string, ks *types.KeywordSet) types.MatchResult {
	result := types.MatchResult{Matched: []string{}, Missing: []string{}}
	if resumeText == "" || ks == nil {
		return result
	}

	lower := strings.ToLower(resumeText)
	for _, kw := range ks.All {
		if strings.Contains(lower, strings.ToLower(kw)) {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}
	return result
}

// GetSuggestions returns up to ten job keywords, technical before soft, that
// are not in existing. How existing is assembled is up to the caller; entries
// are compared case-insensitively and must match whole.
func GetSuggestions(existing []string, ks *types.KeywordSet) []types.Suggestion {
	suggestions := []types.Suggestion{}
	if ks == nil {
		return suggestions
	}

	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[strings.ToLower(s)] = true
	}

	candidates := append(append([]string{}, ks.Technical...), ks.Soft...)
	for _, skill := range candidates {
		if have[strings.ToLower(skill)] {
			continue
		}
		kind := types.SuggestionSoft
		if ks.IsTechnical(skill) {
			kind = types.SuggestionTechnical
		}
		suggestions = append(suggestions, types.Suggestion{
			Skill:    skill,
			Type:     kind,
			Priority: types.PriorityHigh,
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// SplitSkills splits a comma-joined skill string into trimmed, non-empty entries.
func SplitSkills(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ResumeSkills returns the technical, soft and tool skills of a resume as one
// flat list, the usual input for GetSuggestions.
func ResumeSkills(r *types.StructuredResume) []string {
	if r == nil {
		return []string{}
	}
	out := SplitSkills(r.TechnicalSkills)
	out = append(out, SplitSkills(r.SoftSkills)...)
	return append(out, SplitSkills(r.Tools)...)
}
