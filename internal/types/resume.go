// Package types provides type definitions for structured data used throughout the resume-adapter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Links holds optional profile URLs from a resume header
type Links struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Header represents the contact block of a resume
type Header struct {
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Links    Links  `json:"links,omitempty"`
}

// ExperienceEntry represents one position in the work history.
// Company and Title are required for a valid entry; dates use the
// "YYYY-MM" format or the literal "Present" for ongoing roles.
type ExperienceEntry struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// ProjectEntry represents a personal or professional project
type ProjectEntry struct {
	Name    string   `json:"name"`
	Dates   string   `json:"dates,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// EducationEntry represents one school or training program
type EducationEntry struct {
	School   string `json:"school"`
	Degree   string `json:"degree,omitempty"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates,omitempty"`
}

// Skills categorizes skill strings; all lists are unordered
type Skills struct {
	Languages  []string `json:"languages,omitempty"`
	Frameworks []string `json:"frameworks,omitempty"`
	Tools      []string `json:"tools,omitempty"`
	Other      []string `json:"other,omitempty"`
}

// OtherSection is a free-form bucket for content that does not fit the schema
type OtherSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Metadata carries document-level facts recorded by the pipeline.
// Language, once detected from the input text, is authoritative for
// language-drift enforcement.
type Metadata struct {
	Language             string   `json:"language,omitempty"`
	SourceOrderPreserved bool     `json:"source_order_preserved"`
	Warnings             []string `json:"warnings,omitempty"`
}

// ResumeDocument is the canonical structured resume flowing through the
// adaptation pipeline. Instances are mutated in place by the pipeline
// stages and must be treated as immutable once returned to the caller.
type ResumeDocument struct {
	Header        Header            `json:"header"`
	Summary       string            `json:"summary,omitempty"`
	Experience    []ExperienceEntry `json:"experience,omitempty"`
	Projects      []ProjectEntry    `json:"projects,omitempty"`
	Education     []EducationEntry  `json:"education,omitempty"`
	Skills        Skills            `json:"skills"`
	Languages     []string          `json:"languages,omitempty"`
	Interests     []string          `json:"interests,omitempty"`
	OtherSections []OtherSection    `json:"other_sections,omitempty"`
	Metadata      Metadata          `json:"metadata"`
}

// AddWarning appends a lossy-transformation note to the document metadata
func (d *ResumeDocument) AddWarning(warning string) {
	d.Metadata.Warnings = append(d.Metadata.Warnings, warning)
}

// Clone returns a deep copy of the document. The language enforcement
// stage mutates its input, so callers needing a pristine pre-adaptation
// snapshot must clone first.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}
	out := *d

	out.Experience = make([]ExperienceEntry, len(d.Experience))
	for i, e := range d.Experience {
		e.Bullets = append([]string(nil), e.Bullets...)
		out.Experience[i] = e
	}

	out.Projects = make([]ProjectEntry, len(d.Projects))
	for i, p := range d.Projects {
		p.Bullets = append([]string(nil), p.Bullets...)
		out.Projects[i] = p
	}

	out.Education = append([]EducationEntry(nil), d.Education...)

	out.Skills.Languages = append([]string(nil), d.Skills.Languages...)
	out.Skills.Frameworks = append([]string(nil), d.Skills.Frameworks...)
	out.Skills.Tools = append([]string(nil), d.Skills.Tools...)
	out.Skills.Other = append([]string(nil), d.Skills.Other...)

	out.Languages = append([]string(nil), d.Languages...)
	out.Interests = append([]string(nil), d.Interests...)

	out.OtherSections = make([]OtherSection, len(d.OtherSections))
	for i, s := range d.OtherSections {
		s.Items = append([]string(nil), s.Items...)
		out.OtherSections[i] = s
	}

	out.Metadata.Warnings = append([]string(nil), d.Metadata.Warnings...)
	return &out
}
