package optimizer

import (
	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// CompareVersions summarises an optimization pass: overall scores of before
// and after against ks, the change log, every keyword the changes name and
// the distinct sections touched in first-seen order.
func CompareVersions(before, after *types.StructuredResume, opt *types.OptimizationResult, ks *types.KeywordSet) types.Comparison {
	cmp := types.Comparison{
		BeforeScore:     scoring.CalculateScore(before, ks).Overall,
		AfterScore:      scoring.CalculateScore(after, ks).Overall,
		Improvements:    []types.Change{},
		AddedKeywords:   []string{},
		ChangedSections: []string{},
	}
	if opt == nil {
		return cmp
	}

	cmp.Improvements = append(cmp.Improvements, opt.Changes...)
	seen := make(map[string]bool)
	for _, c := range opt.Changes {
		cmp.AddedKeywords = append(cmp.AddedKeywords, c.Keywords...)
		if !seen[c.Section] {
			seen[c.Section] = true
			cmp.ChangedSections = append(cmp.ChangedSections, c.Section)
		}
	}
	return cmp
}
