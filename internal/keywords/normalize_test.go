package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "special case", input: "javascript", expected: "JavaScript"},
		{name: "special case any casing", input: "POSTGRESQL", expected: "PostgreSQL"},
		{name: "vue gets suffix", input: "vue", expected: "Vue.js"},
		{name: "acronym", input: "aws", expected: "AWS"},
		{name: "single word title case", input: "python", expected: "Python"},
		{name: "mixed case single word", input: "tERRAFORM", expected: "Terraform"},
		{name: "multi word", input: "machine learning", expected: "Machine Learning"},
		{name: "hyphen becomes space", input: "problem-solving", expected: "Problem Solving"},
		{name: "hyphenated tool", input: "scikit-learn", expected: "Scikit Learn"},
		{name: "dotted token keeps dot", input: "asp.net", expected: "Asp.net"},
		{name: "leading dot", input: ".net", expected: ".net"},
		{name: "symbols", input: "c++", expected: "C++"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkill(tt.input))
		})
	}
}

func TestIsActionVerb(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{word: "Developed", expected: true},
		{word: "led", expected: true},
		{word: "built", expected: true},
		{word: "responsible", expected: false},
		{word: "worked", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsActionVerb(tt.word))
		})
	}
}

func TestStartsWithActionVerb(t *testing.T) {
	assert.True(t, StartsWithActionVerb("developed,"))
	assert.True(t, StartsWithActionVerb("LED"))
	assert.False(t, StartsWithActionVerb("helped"))
}

func TestVocabularyAccessorsReturnCopies(t *testing.T) {
	verbs := ActionVerbs()
	verbs[0] = "mutated"
	assert.NotEqual(t, "mutated", ActionVerbs()[0])

	soft := SoftSkills()
	soft[0] = "mutated"
	assert.NotEqual(t, "mutated", SoftSkills()[0])

	assert.Equal(t, []string{"programming", "frameworks", "databases", "cloud", "tools", "data", "methodologies"}, TechnicalCategories())
}
