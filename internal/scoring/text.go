package scoring

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// FullResumeText flattens the searchable parts of a resume into one
// space-joined string. Contact details other than the name are left out.
func FullResumeText(r *types.StructuredResume) string {
	if r == nil {
		return ""
	}

	var parts []string
	add := func(s ...string) {
		for _, v := range s {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	add(r.FullName, r.Summary, r.TechnicalSkills, r.SoftSkills, r.Tools)
	for _, exp := range r.Experience {
		add(exp.Title, exp.Company, strings.Join(exp.Bullets, " "))
	}
	for _, edu := range r.Education {
		add(edu.Degree, edu.School, edu.Field)
	}
	for _, p := range r.Projects {
		add(p.Name, p.Description, p.Technologies)
	}
	for _, c := range r.Certifications {
		add(c.Name, c.Issuer)
	}

	return strings.Join(parts, " ")
}
