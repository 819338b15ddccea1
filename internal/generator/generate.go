package generator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	summarySkillCount = 3
	summarySoftCount  = 2
)

// yearLength is the average calendar year used for experience arithmetic.
const yearLength = 365.25 * 24 * time.Hour

// startDateLayouts are tried in order when reading an experience start date.
var startDateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"01/2006",
	"1/2006",
	"2006-01-02",
	"2006-01",
	"2006",
}

// GenerateResume runs the creation path over r: it writes a summary when r has
// experience but no summary, enhances every bullet and stamps the result with
// now. The input is not modified. A nil resume yields nil.
func GenerateResume(r *types.StructuredResume, ks *types.KeywordSet, now time.Time) *types.GeneratedResume {
	if r == nil {
		return nil
	}

	out := r.Clone()
	out.EnsureDefaults()

	if out.Summary == "" && len(out.Experience) > 0 {
		out.Summary = GenerateSummary(out, ks, now)
	}
	for i := range out.Experience {
		out.Experience[i].Bullets = EnhanceBullets(out.Experience[i].Bullets)
	}

	return &types.GeneratedResume{
		StructuredResume: *out,
		Optimized:        true,
		GeneratedAt:      now.UTC(),
	}
}

// GenerateSummary writes a creation-path summary of one to four sentences.
// The seniority opener comes from the years elapsed since the earliest
// readable start date; skills come from the job keywords when present and
// from the resume otherwise.
func GenerateSummary(r *types.StructuredResume, ks *types.KeywordSet, now time.Time) string {
	if r == nil {
		r = &types.StructuredResume{}
	}
	years := YearsOfExperience(r.Experience, now)

	var opener string
	switch {
	case years > 10:
		opener = "Senior-level professional"
	case years > 5:
		opener = "Experienced professional"
	case years > 2:
		opener = "Skilled professional"
	default:
		opener = "Motivated professional"
	}
	if years > 0 {
		opener += fmt.Sprintf(" with %d+ years of experience", years)
	}
	parts := []string{opener}

	if ks.HasTechnical() {
		top := ks.Technical[:min(summarySkillCount, len(ks.Technical))]
		parts = append(parts, "specializing in "+strings.Join(top, ", "))
	} else if skills := leadingItems(r.TechnicalSkills, summarySkillCount); len(skills) > 0 {
		if joined := strings.Join(skills, ", "); joined != "" {
			parts = append(parts, "with expertise in "+joined)
		}
	}

	if len(r.Experience) > 0 && r.Experience[0].Title != "" {
		parts = append(parts, fmt.Sprintf("Proven track record in %s roles", strings.ToLower(r.Experience[0].Title)))
	}

	if soft := leadingItems(r.SoftSkills, summarySoftCount); len(soft) > 0 {
		if joined := strings.Join(soft, " and "); joined != "" {
			parts = append(parts, "Known for strong "+strings.ToLower(joined))
		}
	}

	// The opener and the clause after it share the first sentence.
	var b strings.Builder
	b.WriteString(parts[0])
	if len(parts) == 1 {
		b.WriteString(".")
	}
	for _, p := range parts[1:] {
		b.WriteString(" " + p + ".")
	}
	return b.String()
}

// YearsOfExperience returns the whole years between the earliest start date
// that can be read and now. Unreadable dates are ignored; with none readable,
// or a start in the future, the result is zero.
func YearsOfExperience(entries []types.Experience, now time.Time) int {
	var earliest time.Time
	for _, e := range entries {
		t, ok := parseStartDate(e.StartDate)
		if !ok {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	if earliest.IsZero() || !earliest.Before(now) {
		return 0
	}
	return int(math.Floor(float64(now.Sub(earliest)) / float64(yearLength)))
}

func parseStartDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// leadingItems splits a comma-joined list and returns up to n trimmed items.
func leadingItems(list string, n int) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	items := strings.Split(list, ",")
	items = items[:min(n, len(items))]
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}
