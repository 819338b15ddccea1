// Package optimizer rewrites a resume towards a job description: it fills in
// a missing summary, names missing job skills, starts bullets with action
// verbs and records every edit as a types.Change.
package optimizer

import (
	"time"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Section names used in change records.
const (
	SectionSummary    = "Summary"
	SectionExperience = "Experience"
	SectionSkills     = "Skills"
)

// now is replaced in tests.
var now = time.Now

// OptimizeResume returns an optimized deep copy of r. The input is never
// modified. It returns nil only when r is nil; a nil keyword set skips the
// keyword-driven steps.
func OptimizeResume(r *types.StructuredResume, ks *types.KeywordSet) *types.OptimizationResult {
	if r == nil {
		return nil
	}

	out := r.Clone()
	out.EnsureDefaults()
	changes := []types.Change{}

	if out.Summary == "" && len(out.Experience) > 0 {
		out.Summary = GenerateSummary(out, ks)
		changes = append(changes, types.Change{
			Type:     types.ChangeAdded,
			Section:  SectionSummary,
			Text:     "Generated professional summary",
			Keywords: []string{},
		})
	}

	if out.Summary != "" {
		summary, summaryChanges := OptimizeSummary(out.Summary, ks)
		out.Summary = summary
		changes = append(changes, summaryChanges...)
	}

	for i := range out.Experience {
		if len(out.Experience[i].Bullets) == 0 {
			continue
		}
		bullets, bulletChanges := OptimizeBullets(out.Experience[i].Bullets)
		out.Experience[i].Bullets = bullets
		changes = append(changes, bulletChanges...)
	}

	technical, soft, skillChanges := OptimizeSkills(out.TechnicalSkills, out.SoftSkills, ks)
	out.TechnicalSkills = technical
	out.SoftSkills = soft
	changes = append(changes, skillChanges...)

	return &types.OptimizationResult{
		StructuredResume: *out,
		Changes:          changes,
		OptimizedAt:      now().UTC(),
	}
}
