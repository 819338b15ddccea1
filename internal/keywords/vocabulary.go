package keywords

import "strings"

// skillCategory is one group of the technical skill dictionary.
type skillCategory struct {
	name   string
	skills []string
}

// technicalSkills is scanned in order; the order decides the order of
// KeywordSet.Technical.
var technicalSkills = []skillCategory{
	{name: "programming", skills: []string{
		"javascript", "python", "java", "c++", "c#", "ruby", "php", "swift", "kotlin", "go",
		"rust", "typescript", "scala", "r", "matlab", "perl", "html", "css", "sql", "nosql", "graphql",
	}},
	{name: "frameworks", skills: []string{
		"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "rails",
		"laravel", ".net", "asp.net", "next.js", "nuxt", "gatsby", "svelte", "bootstrap",
		"tailwind", "jquery", "redux", "mobx",
	}},
	{name: "databases", skills: []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sql server",
		"sqlite", "dynamodb", "cassandra", "firebase", "supabase", "mariadb",
	}},
	{name: "cloud", skills: []string{
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean", "cloudflare", "vercel",
		"netlify", "kubernetes", "docker", "terraform", "ansible", "jenkins", "circleci", "github actions",
	}},
	{name: "tools", skills: []string{
		"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack", "figma", "sketch",
		"adobe", "photoshop", "illustrator", "vscode", "intellij", "postman", "swagger", "webpack",
		"babel", "npm", "yarn",
	}},
	{name: "data", skills: []string{
		"machine learning", "deep learning", "artificial intelligence", "ai", "ml", "data science",
		"data analysis", "data engineering", "big data", "hadoop", "spark", "tableau", "power bi",
		"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "nlp", "computer vision",
	}},
	{name: "methodologies", skills: []string{
		"agile", "scrum", "kanban", "waterfall", "devops", "ci/cd", "tdd", "bdd", "microservices",
		"rest", "api", "soap", "graphql", "oauth", "jwt",
	}},
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "collaboration", "problem-solving", "problem solving",
	"critical thinking", "analytical", "creative", "creativity", "adaptable", "adaptability",
	"time management", "organized", "organization", "detail-oriented", "attention to detail",
	"self-motivated", "motivated", "proactive", "initiative", "interpersonal", "presentation",
	"negotiation", "conflict resolution", "decision-making", "strategic thinking", "mentoring",
	"coaching", "customer service", "client-facing", "stakeholder management", "cross-functional",
}

var actionVerbs = []string{
	"achieved", "accelerated", "accomplished", "administered", "advanced", "analyzed", "architected",
	"automated", "built", "collaborated", "conceptualized", "configured", "consolidated", "coordinated",
	"created", "decreased", "delivered", "deployed", "designed", "developed", "directed", "drove",
	"enabled", "engineered", "enhanced", "established", "executed", "expanded", "facilitated",
	"generated", "grew", "guided", "identified", "implemented", "improved", "increased", "initiated",
	"innovated", "integrated", "launched", "led", "leveraged", "managed", "mentored", "migrated",
	"modernized", "monitored", "negotiated", "optimized", "orchestrated", "organized", "oversaw",
	"partnered", "pioneered", "planned", "presented", "prioritized", "produced", "programmed",
	"reduced", "refactored", "redesigned", "reengineered", "resolved", "restructured", "revamped",
	"scaled", "simplified", "spearheaded", "standardized", "streamlined", "strengthened",
	"supervised", "tested", "trained", "transformed", "troubleshot", "unified", "upgraded",
}

// TechnicalCategories returns the category names of the technical dictionary.
func TechnicalCategories() []string {
	names := make([]string, len(technicalSkills))
	for i, c := range technicalSkills {
		names[i] = c.name
	}
	return names
}

// SoftSkills returns a copy of the soft-skill vocabulary.
func SoftSkills() []string {
	return append([]string(nil), softSkills...)
}

// ActionVerbs returns a copy of the action-verb vocabulary (lower-case, past tense).
func ActionVerbs() []string {
	return append([]string(nil), actionVerbs...)
}

// StartsWithActionVerb reports whether word begins with any vocabulary verb.
// A word like "developed," or "led" counts; the comparison is case-insensitive.
func StartsWithActionVerb(word string) bool {
	lower := strings.ToLower(word)
	for _, verb := range actionVerbs {
		if strings.HasPrefix(lower, verb) {
			return true
		}
	}
	return false
}

// IsActionVerb reports whether word equals a vocabulary verb or a verb
// followed by "d" or "ed".
func IsActionVerb(word string) bool {
	lower := strings.ToLower(word)
	for _, verb := range actionVerbs {
		if lower == verb || lower == verb+"d" || lower == verb+"ed" {
			return true
		}
	}
	return false
}
