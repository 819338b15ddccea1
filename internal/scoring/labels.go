package scoring

// Score colours used by the CLI printer and API clients.
const (
	ColorGood    = "#10b981"
	ColorWarning = "#f59e0b"
	ColorPoor    = "#ef4444"
)

// ScoreColor maps a score to green (>=80), amber (>=60) or red.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return ColorGood
	case score >= 60:
		return ColorWarning
	default:
		return ColorPoor
	}
}

// ScoreLabel maps a score to a short human-readable band.
func ScoreLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Great"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 50:
		return "Needs Work"
	default:
		return "Poor"
	}
}
