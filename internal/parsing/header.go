package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}`)

	// phonePatterns are tried in order; the first match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10,}`),
	}

	linkedInPattern  = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	websitePattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-zA-Z0-9-]+\.[a-zA-Z]{2,}(?:/[\w-]*)?`)
	cityStatePattern = regexp.MustCompile(`[A-Z][a-zA-Z\s]+,\s*[A-Z]{2}`)

	// nameNoise is stripped from the first header line before the name test.
	nameNoise = []*regexp.Regexp{
		regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`),
		regexp.MustCompile(`\+?\d[\d\s\-()]+`),
		regexp.MustCompile(`(?i)linkedin\.com/\S+`),
		regexp.MustCompile(`[|•·]`),
	}
	alphaSpaces = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// parseHeaderLine extracts contact details. A field is only ever set once.
func parseHeaderLine(line string, r *types.StructuredResume, index int) {
	if r.Email == "" {
		r.Email = emailPattern.FindString(line)
	}

	if r.Phone == "" {
		for _, p := range phonePatterns {
			if m := p.FindString(line); m != "" {
				r.Phone = strings.TrimSpace(m)
				break
			}
		}
	}

	if r.LinkedIn == "" {
		r.LinkedIn = linkedInPattern.FindString(line)
	}

	if r.Portfolio == "" {
		r.Portfolio = findPortfolio(line)
	}

	if r.Location == "" {
		r.Location = cityStatePattern.FindString(line)
	}

	switch {
	case index == 0 && r.FullName == "":
		name := line
		for _, p := range nameNoise {
			name = p.ReplaceAllString(name, "")
		}
		name = strings.TrimSpace(name)
		if isNameLike(name) {
			r.FullName = name
		}
	case index == 1 && r.FullName == "":
		if isNameLike(line) && !strings.Contains(line, "@") {
			r.FullName = line
		}
	}
}

// findPortfolio returns the first domain-like token on line that is neither
// part of an email address nor a LinkedIn link.
func findPortfolio(line string) string {
	emails := emailPattern.FindAllStringIndex(line, -1)

	for _, loc := range websitePattern.FindAllStringIndex(line, -1) {
		token := line[loc[0]:loc[1]]
		if strings.Contains(strings.ToLower(token), "linkedin") || strings.Contains(token, "@") {
			continue
		}
		if overlapsAny(loc, emails) {
			continue
		}
		return token
	}
	return ""
}

func overlapsAny(span []int, others [][]int) bool {
	for _, o := range others {
		if span[0] < o[1] && o[0] < span[1] {
			return true
		}
	}
	return false
}

func isNameLike(s string) bool {
	n := runeLen(s)
	return n > 2 && n < 50 && alphaSpaces.MatchString(s)
}
