// Package types provides the data records exchanged between the keyword, parsing, scoring and optimizer packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StructuredResume is the canonical resume record. Skills are kept as
// comma-joined strings so they round-trip through plain text editors unchanged.
type StructuredResume struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`

	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`

	TechnicalSkills string `json:"technicalSkills"`
	SoftSkills      string `json:"softSkills"`
	Tools           string `json:"tools"`

	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`

	// RawText is only set by the text parser.
	RawText string `json:"rawText,omitempty"`
}

// Experience is one work-history entry.
type Experience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Bullets   []string `json:"bullets"`
}

// Education is one education entry.
type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

// Project is one project entry.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

// Certification is one certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// NewStructuredResume returns a resume with every list initialised to an empty slice.
func NewStructuredResume() *StructuredResume {
	r := &StructuredResume{}
	r.EnsureDefaults()
	return r
}

// EnsureDefaults replaces nil slices with empty ones so the record marshals
// as [] rather than null and callers can range over it unconditionally.
func (r *StructuredResume) EnsureDefaults() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Bullets == nil {
			r.Experience[i].Bullets = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
}

// Clone returns a deep copy. The copy never aliases slices of the receiver.
func (r *StructuredResume) Clone() *StructuredResume {
	if r == nil {
		return nil
	}
	out := *r

	out.Experience = make([]Experience, len(r.Experience))
	for i, exp := range r.Experience {
		out.Experience[i] = exp
		out.Experience[i].Bullets = append([]string{}, exp.Bullets...)
	}
	out.Education = append([]Education{}, r.Education...)
	out.Projects = append([]Project{}, r.Projects...)
	out.Certifications = append([]Certification{}, r.Certifications...)

	return &out
}
