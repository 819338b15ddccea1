package generator

import (
	"strings"
	"time"

	"github.com/jonathan/ats-optimizer/internal/types"
)

var summaryStarters = []string{
	"Results-driven", "Dynamic", "Innovative", "Strategic", "Accomplished",
	"Performance-focused", "Forward-thinking", "Detail-oriented", "Analytical",
}

// roleNouns mark a first word that is kept when the summary opener is swapped.
var roleNouns = []string{"professional", "engineer", "developer", "manager"}

var verbAlternatives = map[string][]string{
	"Developed":    {"Built", "Created", "Engineered", "Designed"},
	"Managed":      {"Led", "Directed", "Oversaw", "Supervised"},
	"Improved":     {"Enhanced", "Optimized", "Streamlined", "Advanced"},
	"Created":      {"Developed", "Built", "Designed", "Produced"},
	"Implemented":  {"Deployed", "Executed", "Established", "Launched"},
	"Led":          {"Spearheaded", "Directed", "Headed", "Championed"},
	"Collaborated": {"Partnered", "Worked", "Teamed", "Cooperated"},
}

// GenerateVariations returns count generated resumes numbered from 1. The
// first is the plain creation-path output; each later one swaps the summary
// opener and the leading verb of every bullet.
func GenerateVariations(r *types.StructuredResume, ks *types.KeywordSet, count int, now time.Time) []types.GeneratedResume {
	variations := []types.GeneratedResume{}
	if r == nil {
		return variations
	}

	for i := 0; i < count; i++ {
		v := GenerateResume(r, ks, now)
		v.VariationIndex = i + 1
		if i > 0 {
			if v.Summary != "" {
				v.Summary = summaryVariation(v.Summary, i)
			}
			for j := range v.Experience {
				v.Experience[j].Bullets = bulletVariations(v.Experience[j].Bullets, i)
			}
		}
		variations = append(variations, *v)
	}
	return variations
}

func summaryVariation(summary string, index int) string {
	words := strings.Split(summary, " ")
	starter := summaryStarters[index%len(summaryStarters)]
	if endsWithAny(words[0], roleNouns) {
		words = append([]string{starter}, words...)
	} else {
		words[0] = starter
	}
	return strings.Join(words, " ")
}

func bulletVariations(bullets []string, index int) []string {
	out := make([]string, len(bullets))
	for i, b := range bullets {
		words := strings.Split(b, " ")
		if alts, ok := verbAlternatives[words[0]]; ok {
			words[0] = alts[index%len(alts)]
		}
		out[i] = strings.Join(words, " ")
	}
	return out
}

func endsWithAny(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
