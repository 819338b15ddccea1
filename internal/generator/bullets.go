package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/keywords"
)

// minEnhanceLength is the length a bullet must exceed before a verb is added.
const minEnhanceLength = 10

// verbSuggestions maps a cue word to candidate verbs. Entries are scanned in
// order and the first cue contained in the bullet wins.
var verbSuggestions = []struct {
	cue   string
	verbs []string
}{
	{"team", []string{"Led", "Managed", "Coordinated", "Collaborated"}},
	{"develop", []string{"Developed", "Built", "Created", "Engineered"}},
	{"design", []string{"Designed", "Architected", "Conceptualized"}},
	{"implement", []string{"Implemented", "Deployed", "Executed"}},
	{"improve", []string{"Improved", "Enhanced", "Optimized", "Streamlined"}},
	{"manage", []string{"Managed", "Oversaw", "Directed", "Supervised"}},
	{"create", []string{"Created", "Developed", "Built", "Produced"}},
	{"analyze", []string{"Analyzed", "Evaluated", "Assessed"}},
	{"reduce", []string{"Reduced", "Decreased", "Minimized"}},
	{"increase", []string{"Increased", "Grew", "Expanded", "Boosted"}},
	{"test", []string{"Tested", "Validated", "Verified"}},
	{"support", []string{"Supported", "Assisted", "Facilitated"}},
	{"train", []string{"Trained", "Mentored", "Coached"}},
	{"research", []string{"Researched", "Investigated", "Explored"}},
}

var defaultVerbs = []string{"Executed", "Delivered", "Performed", "Accomplished"}

// SuggestActionVerbs returns candidate opening verbs for a bullet, best first.
// The result is never empty.
func SuggestActionVerbs(text string) []string {
	lower := strings.ToLower(text)
	for _, s := range verbSuggestions {
		if strings.Contains(lower, s.cue) {
			return append([]string(nil), s.verbs...)
		}
	}
	return append([]string(nil), defaultVerbs...)
}

// EnhanceBullets prepends a suggested verb to bullets that lack one,
// capitalises them and terminates them with a period. Blank bullets are
// returned unchanged.
func EnhanceBullets(bullets []string) []string {
	out := make([]string, len(bullets))
	for i, b := range bullets {
		out[i] = enhanceBullet(b)
	}
	return out
}

func enhanceBullet(bullet string) string {
	b := strings.TrimSpace(bullet)
	if b == "" {
		return bullet
	}

	first, _, _ := strings.Cut(b, " ")
	first = strings.TrimRight(first, ".,!?;:")
	if !keywords.IsActionVerb(first) && utf8.RuneCountInString(b) > minEnhanceLength {
		b = SuggestActionVerbs(b)[0] + " " + lowerFirst(b)
	}

	b = upperFirst(b)
	if !strings.HasSuffix(b, ".") && !strings.HasSuffix(b, "!") && !strings.HasSuffix(b, "?") {
		b += "."
	}
	return b
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
