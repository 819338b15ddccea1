package optimizer

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	summarySkillCount = 3
	maxSummaryAdds    = 3
)

// GenerateSummary writes a short summary from the number of roles, the first
// listed title and either the job's top technical keywords or the resume's
// own leading skills.
func GenerateSummary(r *types.StructuredResume, ks *types.KeywordSet) string {
	var parts []string

	switch n := len(r.Experience); {
	case n > 3:
		parts = append(parts, "Seasoned professional")
	case n > 1:
		parts = append(parts, "Experienced professional")
	default:
		parts = append(parts, "Motivated professional")
	}

	if len(r.Experience) > 0 && r.Experience[0].Title != "" {
		parts = append(parts, "with background in "+strings.ToLower(r.Experience[0].Title))
	}

	if ks.HasTechnical() {
		top := ks.Technical[:min(summarySkillCount, len(ks.Technical))]
		parts = append(parts, fmt.Sprintf("Proficient in %s.", strings.Join(top, ", ")))
	} else if r.TechnicalSkills != "" {
		skills := strings.Split(r.TechnicalSkills, ",")
		skills = skills[:min(summarySkillCount, len(skills))]
		for i := range skills {
			skills[i] = strings.TrimSpace(skills[i])
		}
		if joined := strings.Join(skills, ", "); joined != "" {
			parts = append(parts, fmt.Sprintf("Skilled in %s.", joined))
		}
	}

	return strings.Join(parts, " ")
}

// OptimizeSummary appends "Proficient in ..." naming up to three job technical
// keywords the summary does not mention yet.
func OptimizeSummary(summary string, ks *types.KeywordSet) (string, []types.Change) {
	if summary == "" || ks == nil {
		return summary, []types.Change{}
	}

	missing := missingFrom(summary, ks.Technical, maxSummaryAdds)
	if len(missing) == 0 {
		return summary, []types.Change{}
	}

	phrase := strings.Join(missing, ", ")
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	summary += " Proficient in " + phrase + "."

	return summary, []types.Change{{
		Type:     types.ChangeAdded,
		Section:  SectionSummary,
		Text:     "Added skills: " + phrase,
		Keywords: missing,
	}}
}

// missingFrom returns up to limit entries of candidates that text does not
// contain, compared case-insensitively.
func missingFrom(text string, candidates []string, limit int) []string {
	lower := strings.ToLower(text)
	missing := []string{}
	for _, c := range candidates {
		if len(missing) == limit {
			break
		}
		if !strings.Contains(lower, strings.ToLower(c)) {
			missing = append(missing, c)
		}
	}
	return missing
}
