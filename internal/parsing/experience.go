package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// minBulletLength is the shortest bullet text attached in the experience section.
const minBulletLength = 6

var (
	experienceBullet = regexp.MustCompile(`^[•\-*▪◦○]\s*`)
	numberedBullet   = regexp.MustCompile(`^\d+[.)]\s*`)

	// dateRangePatterns are tried in order; group 1 is the start and group 2
	// the end of the range.
	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*\d{4})\s*[-–—to]+\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*\d{4}|Present|Current|Now)`),
		regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*[-–—to]+\s*(\d{1,2}/\d{4}|Present|Current|Now)`),
		regexp.MustCompile(`(?i)(\d{4})\s*[-–—to]+\s*(\d{4}|Present|Current|Now)`),
		regexp.MustCompile(`(?i)(\b\d{4}\b).*?[-–—]\s*(Present|Current|Now|\d{4})`),
	}

	// entrySeparators split a job line into title, company and location. The
	// first separator producing at least two parts is used.
	entrySeparators = []*regexp.Regexp{
		regexp.MustCompile(`\s*\|\s*`),
		regexp.MustCompile(`(?i)\s+at\s+`),
		regexp.MustCompile(`\s*,\s*`),
		regexp.MustCompile(`\s*@\s*`),
		regexp.MustCompile(`\s+-\s+`),
	}
)

var titleKeywords = []string{
	"engineer", "developer", "manager", "director", "analyst",
	"designer", "architect", "lead", "senior", "junior", "intern",
	"specialist", "coordinator", "consultant", "administrator",
	"executive", "associate", "assistant", "supervisor", "head",
	"officer", "chief", "vice president", "vp", "founder", "co-founder",
	"scientist", "researcher", "professor", "instructor", "teacher",
	"technician", "support", "representative", "sales", "marketing",
	"product", "project", "program", "software", "hardware", "data",
	"qa", "quality", "devops", "sre", "full stack", "frontend", "backend",
}

// LooksLikeJobTitle reports whether s contains a job-title keyword. The test
// is substring based, so "Lead" also matches "Leadership".
func LooksLikeJobTitle(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range titleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchDateRange returns the first date-range match as [full, start, end].
func matchDateRange(line string) []string {
	for _, p := range dateRangePatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return m
		}
	}
	return nil
}

func parseExperienceLine(line string, r *types.StructuredResume) {
	if experienceBullet.MatchString(line) || numberedBullet.MatchString(line) {
		text := experienceBullet.ReplaceAllString(line, "")
		text = numberedBullet.ReplaceAllString(text, "")
		if last := lastExperience(r); last != nil && runeLen(text) >= minBulletLength {
			last.Bullets = append(last.Bullets, text)
		}
		return
	}

	dates := matchDateRange(line)
	if dates == nil && !LooksLikeJobTitle(line) {
		return
	}

	entry := types.Experience{Bullets: []string{}}
	rest := line
	if dates != nil {
		entry.StartDate = dates[1]
		entry.EndDate = dates[2]
		rest = strings.TrimSpace(strings.Replace(line, dates[0], "", 1))
	}

	parts := splitEntry(rest)
	switch {
	case len(parts) >= 3:
		entry.Title = strings.TrimSpace(parts[0])
		entry.Company = strings.TrimSpace(parts[1])
		entry.Location = strings.TrimSpace(parts[2])
	case len(parts) == 2:
		entry.Title = strings.TrimSpace(parts[0])
		entry.Company = strings.TrimSpace(parts[1])
	case len(parts) == 1:
		if LooksLikeJobTitle(parts[0]) {
			entry.Title = strings.TrimSpace(parts[0])
		} else {
			entry.Company = strings.TrimSpace(parts[0])
		}
	}

	if entry.Title != "" || entry.Company != "" {
		r.Experience = append(r.Experience, entry)
	}
}

// splitEntry splits s on the first separator yielding two or more non-empty
// parts. If none does, the parts of the last separator tried are returned.
func splitEntry(s string) []string {
	var parts []string
	for _, sep := range entrySeparators {
		parts = parts[:0]
		for _, p := range sep.Split(s, -1) {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			break
		}
	}
	return parts
}
