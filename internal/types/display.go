package types

import "time"

// DisplayResume is the export-oriented projection of a StructuredResume.
// Every field is resolved to a concrete value.
type DisplayResume struct {
	Header         DisplayHeader          `json:"header"`
	Summary        string                 `json:"summary"`
	Experience     []DisplayExperience    `json:"experience"`
	Education      []DisplayEducation     `json:"education"`
	Skills         DisplaySkills          `json:"skills"`
	Projects       []DisplayProject       `json:"projects"`
	Certifications []DisplayCertification `json:"certifications"`
}

// DisplayHeader holds contact details.
type DisplayHeader struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// DisplayExperience is an experience entry whose end date defaults to "Present".
type DisplayExperience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Bullets   []string `json:"bullets"`
}

// DisplayEducation is an education entry.
type DisplayEducation struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
	Field          string `json:"field"`
}

// DisplaySkills groups the three skill strings.
type DisplaySkills struct {
	Technical string `json:"technical"`
	Soft      string `json:"soft"`
	Tools     string `json:"tools"`
}

// DisplayProject is a project entry.
type DisplayProject struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

// DisplayCertification is a certification entry.
type DisplayCertification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// GeneratedResume is a resume produced by the creation path.
type GeneratedResume struct {
	StructuredResume
	Optimized      bool      `json:"optimized"`
	GeneratedAt    time.Time `json:"generatedAt"`
	VariationIndex int       `json:"variationIndex,omitempty"`
}
