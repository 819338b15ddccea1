package optimizer

import (
	"regexp"
	"strings"
)

var digitPattern = regexp.MustCompile(`\d`)

// StyleChecks holds the results of style validation of one bullet.
type StyleChecks struct {
	StrongVerb bool `json:"strongVerb"`
	Quantified bool `json:"quantified"`
	Terminated bool `json:"terminated"`
}

// Passed reports whether every check holds.
func (s StyleChecks) Passed() bool {
	return s.StrongVerb && s.Quantified && s.Terminated
}

// CheckStyle validates a bullet the way OptimizeBullets would leave it.
func CheckStyle(bullet string) StyleChecks {
	text := strings.TrimSpace(bullet)
	return StyleChecks{
		StrongVerb: checkStrongVerb(text),
		Quantified: digitPattern.MatchString(text) || strings.Contains(text, "%"),
		Terminated: strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?"),
	}
}

// checkStrongVerb checks if text starts with an action verb
func checkStrongVerb(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	return startsWithVerb(strings.TrimRight(words[0], ".,!?;:"))
}

// StyleReport counts how many bullets of a resume pass each check.
type StyleReport struct {
	Bullets    int `json:"bullets"`
	StrongVerb int `json:"strongVerb"`
	Quantified int `json:"quantified"`
	Terminated int `json:"terminated"`
}

// ReportStyle runs CheckStyle over every bullet.
func ReportStyle(bullets []string) StyleReport {
	var rep StyleReport
	for _, b := range bullets {
		c := CheckStyle(b)
		rep.Bullets++
		if c.StrongVerb {
			rep.StrongVerb++
		}
		if c.Quantified {
			rep.Quantified++
		}
		if c.Terminated {
			rep.Terminated++
		}
	}
	return rep
}
