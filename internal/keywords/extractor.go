// Package keywords mines job descriptions for technical skills, soft skills,
// requirement phrases and experience/education signals.
package keywords

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Rule is a named extraction pattern. Rules are applied in slice order and
// every non-overlapping match of a rule is collected.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// ExperienceRules match "years of experience" phrases.
var ExperienceRules = []Rule{
	{Name: "years-of-experience", Pattern: regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)},
	{Name: "experience-of-years", Pattern: regexp.MustCompile(`(?i)(?:experience|exp)\s*(?:of\s*)?(\d+)\+?\s*(?:years?|yrs?)`)},
	{Name: "year-range", Pattern: regexp.MustCompile(`(?i)(\d+)-(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)},
}

// EducationRules match degree requirements and common fields of study.
var EducationRules = []Rule{
	{Name: "bachelor", Pattern: regexp.MustCompile(`(?i)bachelor'?s?\s*(?:degree)?(?:\s*in\s*[\w\s]+)?`)},
	{Name: "master", Pattern: regexp.MustCompile(`(?i)master'?s?\s*(?:degree)?(?:\s*in\s*[\w\s]+)?`)},
	{Name: "phd", Pattern: regexp.MustCompile(`(?i)ph\.?d\.?(?:\s*in\s*[\w\s]+)?`)},
	{Name: "bs", Pattern: regexp.MustCompile(`(?i)b\.?s\.?\s*(?:in\s*[\w\s]+)?`)},
	{Name: "ms", Pattern: regexp.MustCompile(`(?i)m\.?s\.?\s*(?:in\s*[\w\s]+)?`)},
	{Name: "mba", Pattern: regexp.MustCompile(`(?i)mba`)},
	{Name: "computer-science", Pattern: regexp.MustCompile(`(?i)computer science`)},
	{Name: "software-engineering", Pattern: regexp.MustCompile(`(?i)software engineering`)},
	{Name: "information-technology", Pattern: regexp.MustCompile(`(?i)information technology`)},
	{Name: "related-field", Pattern: regexp.MustCompile(`(?i)related field`)},
}

// RequirementRules match certifications and clearances.
var RequirementRules = []Rule{
	{Name: "certified", Pattern: regexp.MustCompile(`(?i)certified\s+[\w\s]+`)},
	{Name: "certification", Pattern: regexp.MustCompile(`(?i)certification\s+(?:in\s+)?[\w\s]+`)},
	{Name: "clearance", Pattern: regexp.MustCompile(`(?i)clearance`)},
	{Name: "security-clearance", Pattern: regexp.MustCompile(`(?i)security\s+clearance`)},
	{Name: "aws-certified", Pattern: regexp.MustCompile(`(?i)aws\s+certified`)},
	{Name: "pmp", Pattern: regexp.MustCompile(`(?i)pmp`)},
	{Name: "scrum-master", Pattern: regexp.MustCompile(`(?i)scrum\s+master`)},
	{Name: "cissp", Pattern: regexp.MustCompile(`(?i)cissp`)},
}

// Extract mines a job description. It never fails: empty input yields a set
// whose lists are all empty.
func Extract(text string) *types.KeywordSet {
	ks := types.NewKeywordSet()
	if text == "" {
		return ks
	}

	lower := strings.ToLower(text)

	for _, category := range technicalSkills {
		for _, skill := range category.skills {
			if strings.Contains(lower, skill) {
				ks.Technical = appendFold(ks.Technical, NormalizeSkill(skill))
			}
		}
	}

	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			ks.Soft = appendFold(ks.Soft, NormalizeSkill(skill))
		}
	}

	// Experience phrases keep duplicates: overlapping rules may repeat a phrase.
	for _, rule := range ExperienceRules {
		ks.Experience = append(ks.Experience, rule.Pattern.FindAllString(text, -1)...)
	}

	for _, rule := range EducationRules {
		for _, m := range rule.Pattern.FindAllString(text, -1) {
			ks.Education = appendFold(ks.Education, strings.TrimSpace(m))
		}
	}

	for _, rule := range RequirementRules {
		for _, m := range rule.Pattern.FindAllString(text, -1) {
			ks.Requirements = appendFold(ks.Requirements, strings.TrimSpace(m))
		}
	}

	ks.All = ks.Union()
	return ks
}

// appendFold appends s unless an entry equal under case folding exists.
func appendFold(list []string, s string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, s) {
			return list
		}
	}
	return append(list, s)
}
