package optimizer

import (
	"testing"
	"time"

	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *types.StructuredResume {
	return &types.StructuredResume{
		FullName:        "Jane Doe",
		Summary:         "Backend engineer",
		TechnicalSkills: "Go",
		Experience: []types.Experience{{
			Title:   "Software Engineer",
			Company: "Acme Corp",
			Bullets: []string{"responsible for the new checkout flow"},
		}},
	}
}

func sampleKeywords() *types.KeywordSet {
	return &types.KeywordSet{
		Technical: []string{"Go", "AWS", "Docker"},
		Soft:      []string{"Leadership"},
		All:       []string{"Go", "AWS", "Docker", "Leadership"},
	}
}

func TestOptimizeResume_Nil(t *testing.T) {
	assert.Nil(t, OptimizeResume(nil, sampleKeywords()))
}

func TestOptimizeResume_DoesNotMutateInput(t *testing.T) {
	r := sampleResume()
	result := OptimizeResume(r, sampleKeywords())
	require.NotNil(t, result)

	assert.Equal(t, "Backend engineer", r.Summary)
	assert.Equal(t, "Go", r.TechnicalSkills)
	assert.Equal(t, "responsible for the new checkout flow", r.Experience[0].Bullets[0])

	result.Experience[0].Bullets[0] = "changed"
	assert.Equal(t, "responsible for the new checkout flow", r.Experience[0].Bullets[0])
}

func TestOptimizeResume_AppliesAllSteps(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	result := OptimizeResume(sampleResume(), sampleKeywords())
	require.NotNil(t, result)

	assert.Equal(t, "Backend engineer. Proficient in Go, AWS, Docker.", result.Summary)
	assert.Equal(t, []string{"Managed responsible for the new checkout flow."}, result.Experience[0].Bullets)
	assert.Equal(t, "Go, AWS, Docker", result.TechnicalSkills)
	assert.Equal(t, "Leadership", result.SoftSkills)
	assert.Equal(t, fixed, result.OptimizedAt)

	require.Len(t, result.Changes, 4)
	assert.Equal(t, types.Change{Type: types.ChangeAdded, Section: SectionSummary, Text: "Added skills: Go, AWS, Docker", Keywords: []string{"Go", "AWS", "Docker"}}, result.Changes[0])
	assert.Equal(t, types.Change{Type: types.ChangeImproved, Section: SectionExperience, Text: `Added action verb "Managed"`, Keywords: []string{"Managed"}}, result.Changes[1])
	assert.Equal(t, "Added missing skills: AWS, Docker", result.Changes[2].Text)
	assert.Equal(t, "Added soft skills: Leadership", result.Changes[3].Text)
}

func TestOptimizeResume_SecondPassAddsNothing(t *testing.T) {
	ks := sampleKeywords()
	first := OptimizeResume(sampleResume(), ks)
	require.NotNil(t, first)

	second := OptimizeResume(first.Resume(), ks)
	require.NotNil(t, second)

	assert.Empty(t, second.Changes)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.TechnicalSkills, second.TechnicalSkills)
	assert.Equal(t, first.SoftSkills, second.SoftSkills)
	assert.Equal(t, first.Experience, second.Experience)
}

func TestOptimizeResume_GeneratesMissingSummary(t *testing.T) {
	r := sampleResume()
	r.Summary = ""
	ks := &types.KeywordSet{Technical: []string{"Go", "AWS", "Docker", "Kubernetes"}}

	result := OptimizeResume(r, ks)
	require.NotNil(t, result)

	assert.Equal(t, "Motivated professional with background in software engineer Proficient in Go, AWS, Docker. Proficient in Kubernetes.", result.Summary)
	require.NotEmpty(t, result.Changes)
	assert.Equal(t, types.Change{Type: types.ChangeAdded, Section: SectionSummary, Text: "Generated professional summary", Keywords: []string{}}, result.Changes[0])
	assert.Equal(t, "Added skills: Kubernetes", result.Changes[1].Text)
}

func TestOptimizeResume_NoSummaryWithoutExperience(t *testing.T) {
	r := &types.StructuredResume{FullName: "Jane Doe"}
	result := OptimizeResume(r, sampleKeywords())
	require.NotNil(t, result)

	assert.Empty(t, result.Summary)
	assert.NotNil(t, result.Experience)
}

func TestOptimizeResume_NilKeywords(t *testing.T) {
	result := OptimizeResume(sampleResume(), nil)
	require.NotNil(t, result)

	assert.Equal(t, "Backend engineer", result.Summary)
	assert.Equal(t, "Go", result.TechnicalSkills)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, SectionExperience, result.Changes[0].Section)
}

func TestGenerateSummary(t *testing.T) {
	tests := []struct {
		name     string
		resume   *types.StructuredResume
		ks       *types.KeywordSet
		expected string
	}{
		{
			name: "many roles with job keywords",
			resume: &types.StructuredResume{Experience: []types.Experience{
				{Title: "Staff Engineer"}, {}, {}, {},
			}},
			ks:       &types.KeywordSet{Technical: []string{"Go", "AWS"}},
			expected: "Seasoned professional with background in staff engineer Proficient in Go, AWS.",
		},
		{
			name: "two roles falls back to resume skills",
			resume: &types.StructuredResume{
				TechnicalSkills: "Python, SQL , Airflow, Spark",
				Experience:      []types.Experience{{Title: "Data Engineer"}, {}},
			},
			expected: "Experienced professional with background in data engineer Skilled in Python, SQL, Airflow.",
		},
		{
			name:     "no title no skills",
			resume:   &types.StructuredResume{Experience: []types.Experience{{}}},
			expected: "Motivated professional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSummary(tt.resume, tt.ks))
		})
	}
}

func TestOptimizeSummary(t *testing.T) {
	tests := []struct {
		name         string
		summary      string
		technical    []string
		expected     string
		wantKeywords []string
	}{
		{
			name:         "adds period before sentence",
			summary:      "Backend engineer",
			technical:    []string{"Go", "Python"},
			expected:     "Backend engineer. Proficient in Go, Python.",
			wantKeywords: []string{"Go", "Python"},
		},
		{
			name:         "at most three",
			summary:      "Engineer.",
			technical:    []string{"Rust", "Scala", "Kotlin", "Swift", "Perl"},
			expected:     "Engineer. Proficient in Rust, Scala, Kotlin.",
			wantKeywords: []string{"Rust", "Scala", "Kotlin"},
		},
		{
			name:      "nothing missing",
			summary:   "Engineer using Rust daily.",
			technical: []string{"rust"},
			expected:  "Engineer using Rust daily.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changes := OptimizeSummary(tt.summary, &types.KeywordSet{Technical: tt.technical})
			assert.Equal(t, tt.expected, got)
			if tt.wantKeywords == nil {
				assert.Empty(t, changes)
				return
			}
			require.Len(t, changes, 1)
			assert.Equal(t, tt.wantKeywords, changes[0].Keywords)
		})
	}
}

func TestOptimizeBullets(t *testing.T) {
	bullets := []string{
		"Developed a dashboard used by 500 users",
		"   ",
		"led the migration to Kubernetes",
		"fixed bugs",
		"Supported on-call rotation!",
		"worked with the team on payments",
		"Developed, tested and shipped the billing service",
	}

	got, changes := OptimizeBullets(bullets)

	assert.Equal(t, []string{
		"Developed a dashboard used by 500 users.",
		"Led the migration to Kubernetes.",
		"Fixed bugs.",
		"Supported on-call rotation!",
		"Collaborated worked with the team on payments.",
		"Developed, tested and shipped the billing service.",
	}, got)
	require.Len(t, changes, 1)
	assert.Equal(t, []string{"Collaborated"}, changes[0].Keywords)
}

func TestOptimizeBullets_CheckoutScenario(t *testing.T) {
	got, changes := OptimizeBullets([]string{"responsible for the new checkout flow"})

	require.Len(t, got, 1)
	assert.Equal(t, "Managed responsible for the new checkout flow.", got[0])
	require.Len(t, changes, 1)
	assert.Equal(t, `Added action verb "Managed"`, changes[0].Text)
}

func TestSelectActionVerb(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"wrote unit tests for billing", "Developed"},
		{"planned sprint goals", "Designed"},
		{"mentoring juniors", "Mentored"},
		{"cross-functional launch", "Collaborated"},
		{"something else entirely", "Executed"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectActionVerb(tt.text))
		})
	}
}

func TestOptimizeSkills(t *testing.T) {
	ks := &types.KeywordSet{
		Technical: []string{"Go", "Python", "AWS", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins"},
		Soft:      []string{"Leadership", "Communication", "Teamwork", "Mentoring"},
	}

	technical, soft, changes := OptimizeSkills("Go, Python", "", ks)

	assert.Equal(t, "Go, Python, AWS, Docker, Kubernetes, Terraform, Ansible", technical)
	assert.Equal(t, "Leadership, Communication, Teamwork", soft)
	require.Len(t, changes, 2)
	assert.Equal(t, []string{"AWS", "Docker", "Kubernetes", "Terraform", "Ansible"}, changes[0].Keywords)
	assert.Equal(t, []string{"Leadership", "Communication", "Teamwork"}, changes[1].Keywords)
}

func TestCompareVersions(t *testing.T) {
	ks := sampleKeywords()
	before := sampleResume()
	opt := OptimizeResume(before, ks)
	require.NotNil(t, opt)

	cmp := CompareVersions(before, opt.Resume(), opt, ks)

	assert.Equal(t, opt.Changes, cmp.Improvements)
	assert.Equal(t, []string{"Go", "AWS", "Docker", "Managed", "AWS", "Docker", "Leadership"}, cmp.AddedKeywords)
	assert.Equal(t, []string{SectionSummary, SectionExperience, SectionSkills}, cmp.ChangedSections)
	assert.GreaterOrEqual(t, cmp.AfterScore, cmp.BeforeScore)
}

func TestCompareVersions_NilResult(t *testing.T) {
	cmp := CompareVersions(nil, nil, nil, nil)
	assert.Empty(t, cmp.Improvements)
	assert.NotNil(t, cmp.AddedKeywords)
	assert.NotNil(t, cmp.ChangedSections)
}

func TestCheckStyle(t *testing.T) {
	tests := []struct {
		name     string
		bullet   string
		expected StyleChecks
	}{
		{"all checks", "Reduced latency by 40%.", StyleChecks{StrongVerb: true, Quantified: true, Terminated: true}},
		{"own verb", "Supported on-call rotation", StyleChecks{StrongVerb: true}},
		{"weak start", "I worked on 3 services", StyleChecks{Quantified: true}},
		{"empty", "", StyleChecks{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckStyle(tt.bullet))
		})
	}

	assert.True(t, CheckStyle("Led 3 teams.").Passed())

	rep := ReportStyle([]string{"Led 3 teams.", "fixed bugs"})
	assert.Equal(t, StyleReport{Bullets: 2, StrongVerb: 1, Quantified: 1, Terminated: 1}, rep)
}
