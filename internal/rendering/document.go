package rendering

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Document is the data passed to every template. All text is already escaped
// for the target format.
type Document struct {
	Name           string
	Contact        string
	Summary        string
	Companies      []CompanySection
	Education      []EducationBlock
	Skills         []SkillLine
	Projects       []ProjectBlock
	Certifications []string
}

// CompanySection is a company with one or more roles.
type CompanySection struct {
	Company  string
	Location string
	Roles    []RoleSection
}

// RoleSection is a role within a company.
type RoleSection struct {
	Title   string
	Dates   string
	Bullets []string
}

// EducationBlock is one education entry flattened into display lines.
type EducationBlock struct {
	Degree   string
	School   string
	Date     string
	GPA      string
	Location string
}

// SkillLine is a labelled skills row.
type SkillLine struct {
	Label string
	Value string
}

// ProjectBlock is one project entry.
type ProjectBlock struct {
	Title       string
	Description string
	Link        string
}

// buildDocument converts d into template data, passing every user-supplied
// string through esc.
func buildDocument(d types.DisplayResume, esc func(string) string) *Document {
	h := d.Header
	contact := make([]string, 0, 5)
	for _, part := range []string{h.Email, h.Phone, h.Location, h.LinkedIn, h.Portfolio} {
		if part = strings.TrimSpace(part); part != "" {
			contact = append(contact, esc(part))
		}
	}

	doc := &Document{
		Name:           esc(h.Name),
		Contact:        strings.Join(contact, " | "),
		Summary:        esc(d.Summary),
		Companies:      groupByCompany(d.Experience, esc),
		Education:      make([]EducationBlock, 0, len(d.Education)),
		Skills:         []SkillLine{},
		Projects:       make([]ProjectBlock, 0, len(d.Projects)),
		Certifications: make([]string, 0, len(d.Certifications)),
	}

	for _, e := range d.Education {
		degree := e.Degree
		if e.Field != "" {
			degree += " in " + e.Field
		}
		doc.Education = append(doc.Education, EducationBlock{
			Degree:   esc(degree),
			School:   esc(e.School),
			Date:     esc(e.GraduationDate),
			GPA:      esc(e.GPA),
			Location: esc(e.Location),
		})
	}

	for _, s := range []SkillLine{
		{"Technical Skills", d.Skills.Technical},
		{"Soft Skills", d.Skills.Soft},
		{"Tools & Technologies", d.Skills.Tools},
	} {
		if s.Value != "" {
			doc.Skills = append(doc.Skills, SkillLine{Label: esc(s.Label), Value: esc(s.Value)})
		}
	}

	for _, p := range d.Projects {
		title := p.Name
		if p.Technologies != "" {
			title += " (" + p.Technologies + ")"
		}
		doc.Projects = append(doc.Projects, ProjectBlock{
			Title:       esc(title),
			Description: esc(p.Description),
			Link:        esc(p.Link),
		})
	}

	for _, c := range d.Certifications {
		line := c.Name
		if c.Issuer != "" {
			line += " - " + c.Issuer
			if c.Date != "" {
				line += ", " + c.Date
			}
		}
		doc.Certifications = append(doc.Certifications, esc(line))
	}

	return doc
}

// groupByCompany merges roles held at the same company into one section,
// keeping the order in which companies first appear. Entries without a
// company are never merged.
func groupByCompany(entries []types.DisplayExperience, esc func(string) string) []CompanySection {
	companies := make([]CompanySection, 0, len(entries))
	index := make(map[string]int)

	for _, e := range entries {
		role := RoleSection{
			Title:   esc(e.Title),
			Dates:   formatDates(e.StartDate, e.EndDate, esc),
			Bullets: make([]string, 0, len(e.Bullets)),
		}
		for _, b := range e.Bullets {
			if b = strings.TrimSpace(b); b != "" {
				role.Bullets = append(role.Bullets, esc(b))
			}
		}

		if i, ok := index[e.Company]; ok && e.Company != "" {
			companies[i].Roles = append(companies[i].Roles, role)
			continue
		}
		if e.Company != "" {
			index[e.Company] = len(companies)
		}
		companies = append(companies, CompanySection{
			Company:  esc(e.Company),
			Location: esc(e.Location),
			Roles:    []RoleSection{role},
		})
	}

	return companies
}

func formatDates(start, end string, esc func(string) string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return esc(end)
	default:
		return esc(start) + " - " + esc(end)
	}
}
