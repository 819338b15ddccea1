package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

var (
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(Bachelor'?s?|Master'?s?|Ph\.?D\.?|Doctorate|B\.?A\.?|B\.?S\.?|M\.?A\.?|M\.?S\.?|M\.?B\.?A\.?|Associate'?s?|B\.?Tech|M\.?Tech|B\.?E\.?|M\.?E\.?)\b`),
		regexp.MustCompile(`(?i)\b(Bachelor|Master|Doctor)\s+of\s+\w+`),
	}
	institutionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(University|College|Institute|School|Academy)\b`),
		regexp.MustCompile(`\b[A-Z][a-zA-Z\s]+(University|College|Institute|School)\b`),
	}

	yearPattern       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	gpaPattern        = regexp.MustCompile(`(?i)GPA:?\s*([\d.]+)`)
	fieldPattern      = regexp.MustCompile(`(?i)(?:in|of)\s+([A-Za-z\s]+?)(?:,|\||from|at|$)`)
	schoolNamePattern = regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]*(University|College|Institute|School|Academy)[a-zA-Z\s]*)`)
	fourDigits        = regexp.MustCompile(`\d{4}`)
	schoolCityPattern = regexp.MustCompile(`[A-Z][a-zA-Z]+,\s*[A-Z]{2}`)
)

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func parseEducationLine(line string, r *types.StructuredResume) {
	if !anyMatch(degreePatterns, line) && !anyMatch(institutionPatterns, line) {
		return
	}

	var edu types.Education
	edu.GraduationDate = yearPattern.FindString(line)

	if m := gpaPattern.FindStringSubmatch(line); m != nil {
		edu.GPA = m[1]
	}

	for _, p := range degreePatterns {
		if m := p.FindString(line); m != "" {
			edu.Degree = strings.TrimSpace(m)
			break
		}
	}

	if m := fieldPattern.FindStringSubmatch(line); m != nil {
		edu.Field = strings.TrimSpace(m[1])
	}

	if m := schoolNamePattern.FindString(line); m != "" {
		edu.School = strings.TrimSpace(fourDigits.ReplaceAllString(m, ""))
	}

	edu.Location = schoolCityPattern.FindString(line)

	if edu.Degree != "" || edu.School != "" {
		r.Education = append(r.Education, edu)
	}
}
