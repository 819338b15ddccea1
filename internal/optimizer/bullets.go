package optimizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/keywords"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// minVerbBulletLength is the length a bullet must exceed before a verb is prepended.
const minVerbBulletLength = 15

const defaultActionVerb = "Executed"

// verbGroups are scanned in order; the first group with a cue found in the
// bullet decides the verb.
var verbGroups = []struct {
	cues []string
	verb string
}{
	{[]string{"team", "collaborate", "together", "cross-functional"}, "Collaborated"},
	{[]string{"develop", "build", "create", "wrote", "code"}, "Developed"},
	{[]string{"manage", "oversee", "supervise", "responsible"}, "Managed"},
	{[]string{"design", "architect", "plan", "blueprint"}, "Designed"},
	{[]string{"improve", "enhance", "optimize", "boost"}, "Improved"},
	{[]string{"analyze", "research", "study", "investigate"}, "Analyzed"},
	{[]string{"implement", "deploy", "launch", "roll out"}, "Implemented"},
	{[]string{"reduce", "decrease", "cut", "lower"}, "Reduced"},
	{[]string{"increase", "grow", "expand", "scale"}, "Increased"},
	{[]string{"lead", "head", "direct", "guide"}, "Led"},
	{[]string{"support", "assist", "help", "aid"}, "Supported"},
	{[]string{"test", "verify", "validate", "check"}, "Tested"},
	{[]string{"train", "mentor", "teach", "coach"}, "Mentored"},
	{[]string{"automate", "script", "streamline"}, "Automated"},
}

// SelectActionVerb picks a verb that fits the bullet's wording.
func SelectActionVerb(text string) string {
	lower := strings.ToLower(text)
	for _, g := range verbGroups {
		for _, cue := range g.cues {
			if strings.Contains(lower, cue) {
				return g.verb
			}
		}
	}
	return defaultActionVerb
}

// startsWithVerb reports whether word is a vocabulary verb or one of the verbs
// this package prepends itself, so a second pass leaves its own output alone.
func startsWithVerb(word string) bool {
	if keywords.IsActionVerb(word) {
		return true
	}
	if strings.EqualFold(word, defaultActionVerb) {
		return true
	}
	for _, g := range verbGroups {
		if strings.EqualFold(word, g.verb) {
			return true
		}
	}
	return false
}

// OptimizeBullets prepends an action verb where one is missing, capitalises
// every bullet and terminates it with a period. Blank bullets are dropped.
func OptimizeBullets(bullets []string) ([]string, []types.Change) {
	out := make([]string, 0, len(bullets))
	changes := []types.Change{}

	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}

		first, _, _ := strings.Cut(b, " ")
		first = strings.TrimRight(first, ".,!?;:")
		if !startsWithVerb(first) && utf8.RuneCountInString(b) > minVerbBulletLength {
			verb := SelectActionVerb(b)
			b = verb + " " + lowerFirst(b)
			changes = append(changes, types.Change{
				Type:     types.ChangeImproved,
				Section:  SectionExperience,
				Text:     `Added action verb "` + verb + `"`,
				Keywords: []string{verb},
			})
		}

		b = upperFirst(b)
		if !strings.HasSuffix(b, ".") && !strings.HasSuffix(b, "!") && !strings.HasSuffix(b, "?") {
			b += "."
		}
		out = append(out, b)
	}

	return out, changes
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
