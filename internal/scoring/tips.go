package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	maxTips            = 5
	maxMissingListed   = 5
	missingKeywordsTip = 3
	shortSummaryLength = 50
)

// GenerateTips returns at most five tips in fixed rule order. Later rules are
// dropped once five tips exist; the list is never re-sorted by priority.
func GenerateTips(b types.ScoreBreakdown, r *types.StructuredResume, ks *types.KeywordSet) []types.Tip {
	if r == nil {
		r = &types.StructuredResume{}
	}
	tips := []types.Tip{}

	if b.Keywords < 60 {
		tips = append(tips, types.Tip{Type: types.TipKeywords, Priority: types.PriorityHigh,
			Text: "Add more keywords from the job description to improve ATS matching"})
	}
	if r.Phone == "" {
		tips = append(tips, types.Tip{Type: types.TipFormat, Priority: types.PriorityMedium,
			Text: "Add a phone number to your contact information"})
	}
	if r.LinkedIn == "" && r.Portfolio == "" {
		tips = append(tips, types.Tip{Type: types.TipFormat, Priority: types.PriorityLow,
			Text: "Consider adding LinkedIn or portfolio links"})
	}
	if b.Content < 70 {
		tips = append(tips, types.Tip{Type: types.TipContent, Priority: types.PriorityHigh,
			Text: "Start bullet points with action verbs and include measurable achievements"})
	}
	if utf8.RuneCountInString(r.Summary) < shortSummaryLength {
		tips = append(tips, types.Tip{Type: types.TipContent, Priority: types.PriorityMedium,
			Text: "Add a professional summary highlighting your key qualifications"})
	}
	if r.TechnicalSkills == "" && ks.HasTechnical() {
		tips = append(tips, types.Tip{Type: types.TipKeywords, Priority: types.PriorityHigh,
			Text: "Add a dedicated skills section with relevant technical skills"})
	}
	if ks != nil {
		missing := missingKeywords(FullResumeText(r), ks.All)
		if len(missing) > missingKeywordsTip {
			listed := missing[:min(maxMissingListed, len(missing))]
			tips = append(tips, types.Tip{Type: types.TipKeywords, Priority: types.PriorityHigh,
				Text: "Consider adding these missing keywords: " + strings.Join(listed, ", ")})
		}
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

// missingKeywords lists the keywords not contained in text, case-insensitively.
func missingKeywords(text string, all []string) []string {
	lower := strings.ToLower(text)
	var missing []string
	for _, kw := range all {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	return missing
}
