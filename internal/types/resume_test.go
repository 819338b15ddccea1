package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredResume_JSONMarshaling(t *testing.T) {
	r := NewStructuredResume()
	r.FullName = "Jane Doe"
	r.LinkedIn = "linkedin.com/in/janedoe"
	r.TechnicalSkills = "Go, Python"

	jsonBytes, err := json.Marshal(r)
	require.NoError(t, err)

	s := string(jsonBytes)
	assert.Contains(t, s, `"fullName":"Jane Doe"`)
	assert.Contains(t, s, `"linkedin":"linkedin.com/in/janedoe"`)
	assert.Contains(t, s, `"technicalSkills":"Go, Python"`)
	assert.Contains(t, s, `"experience":[]`)
	assert.Contains(t, s, `"certifications":[]`)
	assert.NotContains(t, s, `"rawText"`)
}

func TestStructuredResume_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"fullName": "Jane Doe",
		"experience": [{"title": "Engineer", "company": "Acme", "startDate": "2020", "bullets": ["Built things"]}],
		"education": [{"degree": "B.S.", "gpa": "3.8"}]
	}`

	var r StructuredResume
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &r))
	assert.Equal(t, "Jane Doe", r.FullName)
	require.Len(t, r.Experience, 1)
	assert.Equal(t, []string{"Built things"}, r.Experience[0].Bullets)
	assert.Equal(t, "3.8", r.Education[0].GPA)
	assert.Nil(t, r.Projects)

	r.EnsureDefaults()
	assert.NotNil(t, r.Projects)
	assert.NotNil(t, r.Certifications)
}

func TestEnsureDefaults_FillsNilBullets(t *testing.T) {
	r := &StructuredResume{Experience: []Experience{{Title: "Engineer"}}}
	r.EnsureDefaults()

	assert.NotNil(t, r.Experience[0].Bullets)
	assert.Empty(t, r.Experience[0].Bullets)
}

func TestClone_DeepCopy(t *testing.T) {
	original := NewStructuredResume()
	original.Summary = "Engineer"
	original.Experience = []Experience{{Title: "Engineer", Bullets: []string{"Built X"}}}
	original.Projects = []Project{{Name: "Tool"}}

	clone := original.Clone()
	clone.Summary = "Changed"
	clone.Experience[0].Bullets[0] = "Changed"
	clone.Experience[0].Title = "Changed"
	clone.Projects[0].Name = "Changed"

	assert.Equal(t, "Engineer", original.Summary)
	assert.Equal(t, "Built X", original.Experience[0].Bullets[0])
	assert.Equal(t, "Engineer", original.Experience[0].Title)
	assert.Equal(t, "Tool", original.Projects[0].Name)
}

func TestClone_Nil(t *testing.T) {
	var r *StructuredResume
	assert.Nil(t, r.Clone())
}

func TestKeywordSet_Helpers(t *testing.T) {
	ks := NewKeywordSet()
	assert.False(t, ks.HasTechnical())

	ks.Technical = []string{"Go"}
	assert.True(t, ks.HasTechnical())
	assert.True(t, ks.IsTechnical("Go"))
	assert.False(t, ks.IsTechnical("go"))

	var nilSet *KeywordSet
	assert.False(t, nilSet.HasTechnical())
	assert.False(t, nilSet.IsTechnical("Go"))
}

func TestOptimizationResult_MarshalsFlat(t *testing.T) {
	res := OptimizationResult{
		StructuredResume: StructuredResume{FullName: "Jane Doe"},
		Changes:          []Change{{Type: ChangeAdded, Section: "Summary", Text: "Generated professional summary", Keywords: []string{}}},
		OptimizedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	jsonBytes, err := json.Marshal(res)
	require.NoError(t, err)

	s := string(jsonBytes)
	assert.Contains(t, s, `"fullName":"Jane Doe"`)
	assert.Contains(t, s, `"changes":[{"type":"added","section":"Summary"`)
	assert.Contains(t, s, `"optimizedAt":"2024-01-02T03:04:05Z"`)
	assert.Equal(t, "Jane Doe", res.Resume().FullName)
}
