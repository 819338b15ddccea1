package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

type skillKind int

const (
	skillTechnical skillKind = iota
	skillSoft
	skillTools
)

// skillLabels map a category prefix to the skills field it fills. The first
// matching label wins; unlabelled lines are technical.
var skillLabels = []struct {
	pattern *regexp.Regexp
	kind    skillKind
}{
	{regexp.MustCompile(`(?i)^(?:Technical|Programming|Tech|Hard)\s*(?:Skills)?:?\s*`), skillTechnical},
	{regexp.MustCompile(`(?i)^(?:Soft|Interpersonal|Personal)\s*(?:Skills)?:?\s*`), skillSoft},
	{regexp.MustCompile(`(?i)^(?:Tools|Technologies|Frameworks|Libraries|Platforms):?\s*`), skillTools},
	{regexp.MustCompile(`(?i)^(?:Languages|Programming Languages):?\s*`), skillTechnical},
	{regexp.MustCompile(`(?i)^(?:Databases?|DB):?\s*`), skillTechnical},
	{regexp.MustCompile(`(?i)^(?:Cloud|DevOps|Infrastructure):?\s*`), skillTechnical},
}

var listBullet = regexp.MustCompile(`^[•\-*▪]\s*`)

const (
	minSkillLength     = 3
	maxSkillTokenChars = 30
)

func parseSkillsLine(line string, r *types.StructuredResume) {
	text := line
	kind := skillTechnical
	for _, label := range skillLabels {
		if label.pattern.MatchString(line) {
			text = strings.TrimSpace(label.pattern.ReplaceAllString(line, ""))
			kind = label.kind
			break
		}
	}

	text = listBullet.ReplaceAllString(text, "")
	if runeLen(text) < minSkillLength {
		return
	}

	switch kind {
	case skillSoft:
		r.SoftSkills = joinSkills(r.SoftSkills, text)
	case skillTools:
		r.Tools = joinSkills(r.Tools, text)
	default:
		r.TechnicalSkills = joinSkills(r.TechnicalSkills, text)
	}
}

func joinSkills(existing, more string) string {
	if existing == "" {
		return more
	}
	return existing + ", " + more
}

// parseUnknownLine handles lines seen before any section header: bullets go
// to the last experience entry, short comma lists are taken as skills.
func parseUnknownLine(line string, r *types.StructuredResume) {
	if listBullet.MatchString(line) {
		if last := lastExperience(r); last != nil {
			if text := listBullet.ReplaceAllString(line, ""); text != "" {
				last.Bullets = append(last.Bullets, text)
			}
			return
		}
	}

	if !strings.Contains(line, ",") {
		return
	}
	tokens := strings.Split(line, ",")
	if len(tokens) <= 2 {
		return
	}
	for _, tok := range tokens {
		if runeLen(strings.TrimSpace(tok)) >= maxSkillTokenChars {
			return
		}
	}
	r.TechnicalSkills = joinSkills(r.TechnicalSkills, line)
}
