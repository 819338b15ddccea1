package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/keywords"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// noJobKeywordScore is the keyword sub-score when there is nothing to match.
const noJobKeywordScore = 70

// KeywordScore maps the share of job keywords found in the resume text onto a
// piecewise-linear 0-95 scale.
func KeywordScore(r *types.StructuredResume, ks *types.KeywordSet) float64 {
	if ks == nil || len(ks.All) == 0 {
		return noJobKeywordScore
	}

	text := strings.ToLower(FullResumeText(r))
	matched := 0
	for _, kw := range ks.All {
		if strings.Contains(text, strings.ToLower(kw)) {
			matched++
		}
	}

	pct := float64(matched) * 100 / float64(len(ks.All))
	switch {
	case pct >= 80:
		return 95
	case pct >= 60:
		return 75 + (pct - 60)
	case pct >= 30:
		return 50 + (pct-30)*0.83
	default:
		return pct * 1.67
	}
}

// FormatScore starts at 100 and deducts for missing contact details, missing
// experience and inconsistent dates.
func FormatScore(r *types.StructuredResume) float64 {
	score := 100.0
	if r.FullName == "" {
		score -= 15
	}
	if r.Email == "" {
		score -= 15
	}
	if r.Phone == "" {
		score -= 5
	}
	if len(r.Experience) == 0 {
		score -= 10
	}
	if HasInconsistentDates(r) {
		score -= 10
	}
	return max(0, score)
}

// ContentScore rates bullet quality, summary length and skills presence.
func ContentScore(r *types.StructuredResume) float64 {
	total, good := 0, 0
	for _, exp := range r.Experience {
		for _, b := range exp.Bullets {
			total++
			if IsGoodBullet(b) {
				good++
			}
		}
	}

	var score float64
	if total > 0 {
		score = float64(good) / float64(total) * 60
	} else {
		score = 30
	}

	if r.Summary != "" {
		n := utf8.RuneCountInString(r.Summary)
		switch {
		case n >= 100 && n <= 500:
			score += 20
		case n > 50:
			score += 10
		}
	}

	if r.TechnicalSkills != "" || r.SoftSkills != "" || r.Tools != "" {
		score += 20
	}

	return min(100, score)
}

// completenessWeights is evaluated in order; weights total 100.
var completenessWeights = []struct {
	present func(r *types.StructuredResume) bool
	weight  float64
}{
	{func(r *types.StructuredResume) bool { return notBlank(r.FullName) }, 15},
	{func(r *types.StructuredResume) bool { return notBlank(r.Email) }, 15},
	{func(r *types.StructuredResume) bool { return notBlank(r.Phone) }, 5},
	{func(r *types.StructuredResume) bool { return notBlank(r.Summary) }, 15},
	{func(r *types.StructuredResume) bool { return len(r.Experience) > 0 }, 20},
	{func(r *types.StructuredResume) bool { return len(r.Education) > 0 }, 15},
	{func(r *types.StructuredResume) bool { return notBlank(r.TechnicalSkills) }, 10},
	{func(r *types.StructuredResume) bool { return len(r.Projects) > 0 }, 5},
}

// CompletenessScore sums the weights of the populated sections.
func CompletenessScore(r *types.StructuredResume) float64 {
	var score float64
	for _, c := range completenessWeights {
		if c.present(r) {
			score += c.weight
		}
	}
	return score
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

const (
	minBulletLength  = 20
	longBulletLength = 50
)

var metricPattern = regexp.MustCompile(`(?i)\d+%?|\$[\d,]+|[\d,]+\s*(users?|customers?|clients?|projects?|team)`)

// IsGoodBullet reports whether a bullet opens with an action verb and carries
// a metric or some length, or carries a metric on its own.
func IsGoodBullet(b string) bool {
	n := utf8.RuneCountInString(b)
	if n < minBulletLength {
		return false
	}

	first, _, _ := strings.Cut(strings.ToLower(b), " ")
	hasVerb := keywords.StartsWithActionVerb(first)
	hasMetric := metricPattern.MatchString(b)

	switch {
	case hasVerb && hasMetric:
		return true
	case hasVerb && n > longBulletLength:
		return true
	default:
		return hasMetric
	}
}

// HasInconsistentDates reports whether any collected experience or education
// date is blank. Only non-blank dates are collected, so it never reports true;
// real format validation across entries is not attempted.
func HasInconsistentDates(r *types.StructuredResume) bool {
	var dates []string
	for _, exp := range r.Experience {
		if exp.StartDate != "" {
			dates = append(dates, exp.StartDate)
		}
		if exp.EndDate != "" {
			dates = append(dates, exp.EndDate)
		}
	}
	for _, edu := range r.Education {
		if edu.GraduationDate != "" {
			dates = append(dates, edu.GraduationDate)
		}
	}

	for _, d := range dates {
		if d == "" {
			return true
		}
	}
	return false
}
