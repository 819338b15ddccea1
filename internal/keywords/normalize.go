package keywords

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// displayNames maps lower-case skill tokens to their conventional spelling.
var displayNames = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"node.js":    "Node.js",
	"react":      "React",
	"angular":    "Angular",
	"vue":        "Vue.js",
	"next.js":    "Next.js",
	"mongodb":    "MongoDB",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"nosql":      "NoSQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"azure":      "Azure",
	"docker":     "Docker",
	"kubernetes": "Kubernetes",
	"ci/cd":      "CI/CD",
	"rest":       "REST",
	"api":        "API",
	"sql":        "SQL",
	"html":       "HTML",
	"css":        "CSS",
	"git":        "Git",
	"ai":         "AI",
	"ml":         "ML",
	"devops":     "DevOps",
	"graphql":    "GraphQL",
	"oauth":      "OAuth",
	"jwt":        "JWT",
}

var wordSeparator = regexp.MustCompile(`[\s-]+`)

// NormalizeSkill returns the display form of a skill token. Known tokens use
// their conventional spelling; anything else is title-cased word by word,
// with hyphens turned into spaces.
func NormalizeSkill(skill string) string {
	if canonical, ok := displayNames[strings.ToLower(skill)]; ok {
		return canonical
	}

	words := wordSeparator.Split(skill, -1)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// titleWord upper-cases the first rune and lower-cases the rest.
func titleWord(w string) string {
	if w == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
