package parsing

import (
	"regexp"
	"strings"
)

// sectionKeywords lists header synonyms per section. Order matters: the first
// section with a matching keyword wins.
var sectionKeywords = []struct {
	section  Section
	keywords []string
}{
	{SectionExperience, []string{"experience", "work history", "employment", "professional experience", "work experience", "career history"}},
	{SectionEducation, []string{"education", "academic", "qualifications", "educational background"}},
	{SectionSkills, []string{"skills", "technical skills", "competencies", "expertise", "proficiencies", "technologies"}},
	{SectionSummary, []string{"summary", "objective", "profile", "professional summary", "career objective", "about"}},
	{SectionProjects, []string{"projects", "personal projects", "key projects", "portfolio"}},
	{SectionCertifications, []string{"certifications", "licenses", "credentials", "certificates", "professional certifications"}},
}

// maxHeaderLength rejects long lines outright; headers are short.
const maxHeaderLength = 60

// shortHeaderLength bounds the partial-keyword fallback.
const shortHeaderLength = 30

var (
	headerTrailingMarkup = regexp.MustCompile(`[:\-_=•*#]+$`)
	startsUpper          = regexp.MustCompile(`^[A-Z]`)
	capsWords            = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
)

// DetectSectionHeader reports which section line opens, or SectionNone.
// nextLine is consulted for underline-style headers ("Experience" followed by
// a line of dashes or equals signs).
func DetectSectionHeader(line, nextLine string) Section {
	clean := strings.TrimSpace(headerTrailingMarkup.ReplaceAllString(line, ""))
	lower := strings.ToLower(clean)

	if runeLen(clean) > maxHeaderLength {
		return SectionNone
	}

	allCaps := strings.ToUpper(line) == line
	titled := startsUpper.MatchString(line) &&
		(strings.HasSuffix(line, ":") || strings.HasSuffix(line, "-") ||
			strings.HasPrefix(nextLine, "-") || strings.HasPrefix(nextLine, "="))

	for _, group := range sectionKeywords {
		for _, kw := range group.keywords {
			if lower == kw ||
				strings.HasPrefix(lower, kw+":") ||
				strings.HasPrefix(lower, kw+" ") ||
				strings.HasSuffix(lower, " "+kw) {
				return group.section
			}
			if (allCaps || titled) && strings.Contains(lower, kw) {
				return group.section
			}
		}
	}

	if runeLen(line) < shortHeaderLength &&
		(allCaps || strings.HasSuffix(line, ":") || capsWords.MatchString(line)) {
		switch {
		case strings.Contains(lower, "work"), strings.Contains(lower, "employ"):
			return SectionExperience
		case strings.Contains(lower, "school"), strings.Contains(lower, "degree"):
			return SectionEducation
		case strings.Contains(lower, "skill"), strings.Contains(lower, "tech"):
			return SectionSkills
		}
	}

	return SectionNone
}
