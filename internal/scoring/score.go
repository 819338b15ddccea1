// Package scoring computes an ATS compatibility score for a resume against
// the keywords mined from a job description.
package scoring

import (
	"math"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Weights of the four sub-scores in the overall score. They sum to 1.
const (
	keywordWeight      = 0.35
	formatWeight       = 0.25
	contentWeight      = 0.25
	completenessWeight = 0.15
)

// CalculateScore scores r against ks. A nil resume scores as an empty one and
// a nil or empty keyword set means there is no job to match against.
func CalculateScore(r *types.StructuredResume, ks *types.KeywordSet) types.ScoreResult {
	if r == nil {
		r = &types.StructuredResume{}
	}

	breakdown := types.ScoreBreakdown{
		Keywords:     KeywordScore(r, ks),
		Format:       FormatScore(r),
		Content:      ContentScore(r),
		Completeness: CompletenessScore(r),
	}

	weighted := breakdown.Keywords*keywordWeight +
		breakdown.Format*formatWeight +
		breakdown.Content*contentWeight +
		breakdown.Completeness*completenessWeight

	return types.ScoreResult{
		Overall:   clamp(roundHalfUp(weighted), 0, 100),
		Breakdown: breakdown,
		Tips:      GenerateTips(breakdown, r, ks),
	}
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
