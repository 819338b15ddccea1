// Package generator projects resumes for display and export, and implements
// the creation path that builds a polished resume from form-style input.
package generator

import "github.com/jonathan/ats-optimizer/internal/types"

// defaultEndDate is shown for an experience entry with no end date.
const defaultEndDate = "Present"

// FormatForDisplay resolves every field of r to a concrete value. A nil
// resume yields an all-empty projection with empty lists.
func FormatForDisplay(r *types.StructuredResume) types.DisplayResume {
	if r == nil {
		r = &types.StructuredResume{}
	}

	d := types.DisplayResume{
		Header: types.DisplayHeader{
			Name:      r.FullName,
			Email:     r.Email,
			Phone:     r.Phone,
			Location:  r.Location,
			LinkedIn:  r.LinkedIn,
			Portfolio: r.Portfolio,
		},
		Summary:        r.Summary,
		Experience:     make([]types.DisplayExperience, 0, len(r.Experience)),
		Education:      make([]types.DisplayEducation, 0, len(r.Education)),
		Projects:       make([]types.DisplayProject, 0, len(r.Projects)),
		Certifications: make([]types.DisplayCertification, 0, len(r.Certifications)),
		Skills: types.DisplaySkills{
			Technical: r.TechnicalSkills,
			Soft:      r.SoftSkills,
			Tools:     r.Tools,
		},
	}

	for _, e := range r.Experience {
		end := e.EndDate
		if end == "" {
			end = defaultEndDate
		}
		bullets := append([]string{}, e.Bullets...)
		d.Experience = append(d.Experience, types.DisplayExperience{
			Title:     e.Title,
			Company:   e.Company,
			Location:  e.Location,
			StartDate: e.StartDate,
			EndDate:   end,
			Bullets:   bullets,
		})
	}

	for _, e := range r.Education {
		d.Education = append(d.Education, types.DisplayEducation{
			Degree:         e.Degree,
			School:         e.School,
			Location:       e.Location,
			GraduationDate: e.GraduationDate,
			GPA:            e.GPA,
			Field:          e.Field,
		})
	}

	for _, p := range r.Projects {
		d.Projects = append(d.Projects, types.DisplayProject(p))
	}

	for _, c := range r.Certifications {
		d.Certifications = append(d.Certifications, types.DisplayCertification(c))
	}

	return d
}
