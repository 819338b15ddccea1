package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://lever.co/jobs/123", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/External/job/123", PlatformWorkday},
		{"https://acme.workday.com/job/456", PlatformWorkday},
		{"https://notgreenhouse.io.example.com/jobs", PlatformUnknown},
		{"https://careers.example.com/jobs/1", PlatformUnknown},
		{"::not a url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformSelectors(t *testing.T) {
	assert.Equal(t, ".job__description.body", PlatformGreenhouse.ContentSelectors()[0])
	assert.Equal(t, JobPostingSelectors(), PlatformUnknown.ContentSelectors())

	lever := PlatformLever.NoiseSelectors()
	assert.Contains(t, lever, "form")
	assert.Contains(t, lever, ".posting-apply")
	assert.NotContains(t, PlatformUnknown.NoiseSelectors(), ".posting-apply")

	// Returned slices are copies.
	sel := PlatformWorkday.ContentSelectors()
	sel[0] = "changed"
	assert.Equal(t, "[data-automation-id='jobDescription']", PlatformWorkday.ContentSelectors()[0])
}
