package types

// Tip categories.
const (
	TipKeywords = "keywords"
	TipFormat   = "format"
	TipContent  = "content"
)

// ScoreBreakdown holds the four sub-scores. Keywords, format and content may
// be fractional; completeness is always a whole number.
type ScoreBreakdown struct {
	Keywords     float64 `json:"keywords"`
	Format       float64 `json:"format"`
	Content      float64 `json:"content"`
	Completeness float64 `json:"completeness"`
}

// Tip is one actionable improvement hint.
type Tip struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Text     string `json:"text"`
}

// ScoreResult is the ATS compatibility score of a resume against a keyword set.
type ScoreResult struct {
	Overall   int            `json:"overall"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Tips      []Tip          `json:"tips"`
}
