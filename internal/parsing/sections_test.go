package parsing

import (
	"strings"
	"testing"

	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDetectSectionHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		next     string
		expected Section
	}{
		{name: "all caps", line: "EXPERIENCE", expected: SectionExperience},
		{name: "suffix keyword", line: "Work Experience", expected: SectionExperience},
		{name: "trailing colon stripped", line: "Education:", expected: SectionEducation},
		{name: "plain keyword", line: "Skills", expected: SectionSkills},
		{name: "summary suffix", line: "Professional Summary", expected: SectionSummary},
		{name: "projects", line: "Projects", expected: SectionProjects},
		{name: "certifications", line: "Certifications", expected: SectionCertifications},
		{name: "markup stripped", line: "## Certifications ##", expected: SectionCertifications},
		{name: "underlined title case", line: "Key Technologies Used", next: "-----", expected: SectionSkills},
		{name: "title case without underline", line: "Key Technologies Used", expected: SectionNone},
		{name: "partial keyword fallback", line: "WORK", expected: SectionExperience},
		{name: "partial school fallback", line: "SCHOOLING:", expected: SectionEducation},
		{name: "name line", line: "Jane Doe", next: "jane@x.com", expected: SectionNone},
		{name: "job line", line: "Software Engineer | Acme Corp | Jan 2020 - Present", expected: SectionNone},
		{name: "sentence mentioning a keyword", line: "5 years of experience in backend systems", expected: SectionNone},
		{name: "too long", line: "EXPERIENCE " + strings.Repeat("X", 60), expected: SectionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectSectionHeader(tt.line, tt.next))
		})
	}
}

func TestCleanup(t *testing.T) {
	r := &types.StructuredResume{
		FullName:        "  Jane Doe ",
		TechnicalSkills: "Go, Python,, Go ,  ",
		SoftSkills:      "Leadership,Leadership, Teamwork",
		Tools:           " Git ",
		RawText:         "  raw  ",
		Experience:      []types.Experience{{Title: "Engineer"}},
	}

	Cleanup(r)

	assert.Equal(t, "Jane Doe", r.FullName)
	assert.Equal(t, "Go, Python", r.TechnicalSkills)
	assert.Equal(t, "Leadership, Teamwork", r.SoftSkills)
	assert.Equal(t, "Git", r.Tools)
	assert.Equal(t, "  raw  ", r.RawText)
	assert.NotNil(t, r.Experience[0].Bullets)
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.Projects)
}

func TestCleanup_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Cleanup(nil) })
}
