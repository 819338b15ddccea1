// Package parsing turns free-text resumes into types.StructuredResume records.
//
// The parser is a line-oriented state machine: a section cursor moves when a
// line is recognised as a section header, and every other line is handed to
// the handler of the current section. Each handler applies a fixed, ordered
// list of heuristics where the first matching rule wins. Nothing in this
// package returns an error; unrecognised input is dropped.
package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Section identifies a block of resume text.
type Section string

// Sections recognised by the parser. SectionNone means "no header detected".
const (
	SectionNone           Section = ""
	SectionHeader         Section = "header"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionUnknown        Section = "unknown"
)

// maxHeaderLines is how many contact lines the header state consumes before
// the parser gives up waiting for a section header.
const maxHeaderLines = 6

// parser carries the state of one ParseResumeText call.
type parser struct {
	resume      *types.StructuredResume
	section     Section
	headerLines int
}

// ParseResumeText parses resume text. It returns nil only for empty input; a
// whitespace-only document yields an empty resume.
func ParseResumeText(text string) *types.StructuredResume {
	if text == "" {
		return nil
	}

	p := &parser{
		resume:  types.NewStructuredResume(),
		section: SectionHeader,
	}
	p.resume.RawText = text

	lines := splitLines(text)
	for i, line := range lines {
		next := ""
		if i < len(lines)-1 {
			next = lines[i+1]
		}

		if section := DetectSectionHeader(line, next); section != SectionNone {
			p.section = section
			continue
		}
		p.handle(line)
	}

	Cleanup(p.resume)
	return p.resume
}

func (p *parser) handle(line string) {
	r := p.resume

	switch p.section {
	case SectionHeader:
		parseHeaderLine(line, r, p.headerLines)
		p.headerLines++
		if p.headerLines > maxHeaderLines {
			p.section = SectionUnknown
		}
	case SectionSummary:
		if r.Summary != "" {
			r.Summary += " "
		}
		r.Summary += line
	case SectionExperience:
		parseExperienceLine(line, r)
	case SectionEducation:
		parseEducationLine(line, r)
	case SectionSkills:
		parseSkillsLine(line, r)
	case SectionProjects:
		parseProjectLine(line, r)
	case SectionCertifications:
		parseCertificationLine(line, r)
	default:
		parseUnknownLine(line, r)
	}
}

// splitLines splits on "\n", trims every line and drops the empty ones.
func splitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// runeLen is the length used by every length threshold in this package.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// lastExperience returns the most recently opened experience entry, or nil.
func lastExperience(r *types.StructuredResume) *types.Experience {
	if len(r.Experience) == 0 {
		return nil
	}
	return &r.Experience[len(r.Experience)-1]
}
