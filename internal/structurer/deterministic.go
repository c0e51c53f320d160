// Package structurer converts normalized resume text into a structured
// ResumeDocument, either through an LLM (AIStructurer) or through the
// rule-based fallback (Deterministic). Both implement the Structurer
// interface consumed by the clean-CV builder.
package structurer

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/resume-adapter/internal/types"
)

// Result is the outcome of one structuring attempt. Usage and Model are
// nil/empty for the deterministic path.
type Result struct {
	Document *types.ResumeDocument
	Usage    *types.TokenUsage
	Model    string
}

// Structurer converts resume text into a structured document. The
// AI-vs-deterministic split is explicit in the return type: callers
// compose implementations with a fallback instead of catching panics
// or sentinel errors.
type Structurer interface {
	Structure(ctx context.Context, text string) (*Result, error)
}

var (
	emailRe     = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe     = regexp.MustCompile(`\+?[0-9][0-9 ().\-]{7,}[0-9]`)
	linkRe      = regexp.MustCompile(`(?:https?://)?(?:www\.)?(linkedin\.com|github\.com)/[^\s|,]+`)
	dateRangeRe = regexp.MustCompile(`(\d{4}-\d{2}|\d{4})\s*[–—-]\s*(\d{4}-\d{2}|\d{4}|[Pp]resent|[Aa]ujourd'hui|[Aa]ctuel)`)
	bareYearRe  = regexp.MustCompile(`^\d{4}$`)
)

// section header spellings, lowercased, across the languages the
// detector covers. Trailing colons are stripped before lookup.
var sectionHeadings = map[string]string{
	"experience": "experience", "work experience": "experience",
	"professional experience": "experience", "employment": "experience",
	"employment history": "experience", "expérience": "experience",
	"expérience professionnelle": "experience", "expériences professionnelles": "experience",
	"experiencia": "experience", "experiencia profesional": "experience",
	"berufserfahrung": "experience", "esperienza": "experience",

	"education": "education", "éducation": "education", "formation": "education",
	"formations": "education", "studies": "education", "educación": "education",
	"ausbildung": "education", "formazione": "education",

	"skills": "skills", "technical skills": "skills", "compétences": "skills",
	"compétences techniques": "skills", "habilidades": "skills", "kenntnisse": "skills",

	"projects": "projects", "personal projects": "projects", "projets": "projects",
	"projets personnels": "projects", "proyectos": "projects",

	"languages": "languages", "langues": "languages", "idiomas": "languages", "sprachen": "languages",

	"interests": "interests", "hobbies": "interests", "centres d'intérêt": "interests",
	"centres d'interet": "interests", "intereses": "interests",

	"summary": "summary", "profile": "summary", "professional summary": "summary",
	"about": "summary", "about me": "summary", "objective": "summary",
	"profil": "summary", "à propos": "summary", "resumen": "summary",
}

// Deterministic is the rule-based text-to-resume converter. It is a pure
// function of its input with no failure mode on well-formed text and is
// used whenever AI structuring is unavailable or fails.
type Deterministic struct{}

// Structure implements Structurer. The returned error is always nil; the
// signature exists to satisfy the interface.
func (Deterministic) Structure(_ context.Context, text string) (*Result, error) {
	return &Result{Document: StructureText(text)}, nil
}

// StructureText converts normalized resume text into a ResumeDocument
// using section headings, line shapes, and contact-detail patterns.
func StructureText(text string) *types.ResumeDocument {
	doc := &types.ResumeDocument{
		Metadata: types.Metadata{SourceOrderPreserved: true},
	}

	lines := strings.Split(text, "\n")
	section := "header"
	var current *types.ExperienceEntry
	var currentProject *types.ProjectEntry
	var summaryLines []string

	flushExperience := func() {
		if current != nil {
			doc.Experience = append(doc.Experience, *current)
			current = nil
		}
	}
	flushProject := func() {
		if currentProject != nil {
			doc.Projects = append(doc.Projects, *currentProject)
			currentProject = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if canonical, ok := lookupHeading(line); ok {
			flushExperience()
			flushProject()
			section = canonical
			continue
		}

		switch section {
		case "header":
			parseHeaderLine(doc, line)
		case "summary":
			summaryLines = append(summaryLines, line)
		case "experience":
			if bullet, ok := strings.CutPrefix(line, "- "); ok {
				if current != nil {
					current.Bullets = append(current.Bullets, bullet)
				}
				continue
			}
			flushExperience()
			entry := parseExperienceLine(line)
			current = &entry
		case "projects":
			if bullet, ok := strings.CutPrefix(line, "- "); ok {
				if currentProject != nil {
					currentProject.Bullets = append(currentProject.Bullets, bullet)
				}
				continue
			}
			flushProject()
			p := parseProjectLine(line)
			currentProject = &p
		case "education":
			doc.Education = append(doc.Education, parseEducationLine(line))
		case "skills":
			addSkills(doc, line)
		case "languages":
			doc.Languages = append(doc.Languages, splitList(line)...)
		case "interests":
			doc.Interests = append(doc.Interests, splitList(line)...)
		}
	}
	flushExperience()
	flushProject()
	doc.Summary = strings.Join(summaryLines, " ")

	reclassifyEducation(doc)
	return doc
}

// lookupHeading matches a line against the known section headings
func lookupHeading(line string) (string, bool) {
	candidate := strings.ToLower(strings.TrimRight(line, ":"))
	candidate = strings.TrimSpace(candidate)
	canonical, ok := sectionHeadings[candidate]
	return canonical, ok
}

// parseHeaderLine fills the contact block. The first non-contact line
// before any section heading is taken as the candidate's name.
func parseHeaderLine(doc *types.ResumeDocument, line string) {
	matched := false
	rest := line
	if email := emailRe.FindString(line); email != "" {
		if doc.Header.Email == "" {
			doc.Header.Email = email
		}
		// Digits inside an address must not look like a phone number.
		rest = strings.Replace(rest, email, "", 1)
		matched = true
	}
	if link := linkRe.FindString(line); link != "" {
		if strings.Contains(link, "linkedin.com") && doc.Header.Links.LinkedIn == "" {
			doc.Header.Links.LinkedIn = link
		} else if strings.Contains(link, "github.com") && doc.Header.Links.GitHub == "" {
			doc.Header.Links.GitHub = link
		}
		matched = true
	}
	if phone := phoneRe.FindString(rest); phone != "" && doc.Header.Phone == "" {
		doc.Header.Phone = strings.TrimSpace(phone)
		matched = true
	}
	if !matched && doc.Header.FullName == "" {
		doc.Header.FullName = line
	}
}

// parseExperienceLine splits "Title at Company" / "Company — Title"
// shapes and extracts a trailing date range.
func parseExperienceLine(line string) types.ExperienceEntry {
	entry := types.ExperienceEntry{}

	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		entry.StartDate = normalizeDate(m[1])
		entry.EndDate = normalizeDate(m[2])
		line = strings.TrimSpace(strings.Replace(line, m[0], "", 1))
		line = strings.Trim(line, " ,|()")
	}

	for _, sep := range []string{" — ", " – ", " | ", " - "} {
		if left, right, ok := strings.Cut(line, sep); ok {
			entry.Company = strings.TrimSpace(left)
			entry.Title = strings.TrimSpace(right)
			return entry
		}
	}
	if title, company, ok := strings.Cut(line, " at "); ok {
		entry.Title = strings.TrimSpace(title)
		entry.Company = strings.TrimSpace(company)
		return entry
	}
	if title, company, ok := strings.Cut(line, " chez "); ok {
		entry.Title = strings.TrimSpace(title)
		entry.Company = strings.TrimSpace(company)
		return entry
	}

	entry.Company = line
	return entry
}

func parseProjectLine(line string) types.ProjectEntry {
	p := types.ProjectEntry{}
	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		p.Dates = strings.TrimSpace(m[0])
		line = strings.TrimSpace(strings.Replace(line, m[0], "", 1))
		line = strings.Trim(line, " ,|()")
	}
	p.Name = line
	return p
}

func parseEducationLine(line string) types.EducationEntry {
	entry := types.EducationEntry{}
	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		entry.Dates = strings.TrimSpace(m[0])
		line = strings.TrimSpace(strings.Replace(line, m[0], "", 1))
		line = strings.Trim(line, " ,|()")
	}
	for _, sep := range []string{" — ", " – ", " | ", " - "} {
		if left, right, ok := strings.Cut(line, sep); ok {
			entry.School = strings.TrimSpace(left)
			entry.Degree = strings.TrimSpace(right)
			return entry
		}
	}
	entry.School = line
	return entry
}

// normalizeDate keeps YYYY-MM and Present; a bare year becomes YYYY-01
// so the chronology sorter can use it.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	lowered := strings.ToLower(s)
	if lowered == "present" || lowered == "aujourd'hui" || lowered == "actuel" {
		return "Present"
	}
	if bareYearRe.MatchString(s) {
		return s + "-01"
	}
	return s
}

// skillCategories route comma-separated skill tokens into the schema's
// buckets; anything unrecognized lands in Other.
var skillCategories = map[string]string{
	"go": "languages", "golang": "languages", "python": "languages", "java": "languages",
	"javascript": "languages", "typescript": "languages", "c++": "languages", "c#": "languages",
	"ruby": "languages", "php": "languages", "rust": "languages", "kotlin": "languages",
	"swift": "languages", "sql": "languages", "scala": "languages",

	"react": "frameworks", "vue": "frameworks", "angular": "frameworks", "next.js": "frameworks",
	"node.js": "frameworks", "django": "frameworks", "flask": "frameworks", "spring": "frameworks",
	"rails": "frameworks", "laravel": "frameworks", "express": "frameworks", ".net": "frameworks",

	"docker": "tools", "kubernetes": "tools", "git": "tools", "terraform": "tools",
	"jenkins": "tools", "aws": "tools", "gcp": "tools", "azure": "tools",
	"postgresql": "tools", "mysql": "tools", "mongodb": "tools", "redis": "tools",
	"kafka": "tools", "elasticsearch": "tools", "grafana": "tools",
}

func addSkills(doc *types.ResumeDocument, line string) {
	// "Category: a, b, c" lines keep only the list part.
	if _, rest, ok := strings.Cut(line, ":"); ok {
		line = rest
	}
	for _, token := range splitList(line) {
		switch skillCategories[strings.ToLower(token)] {
		case "languages":
			doc.Skills.Languages = append(doc.Skills.Languages, token)
		case "frameworks":
			doc.Skills.Frameworks = append(doc.Skills.Frameworks, token)
		case "tools":
			doc.Skills.Tools = append(doc.Skills.Tools, token)
		default:
			doc.Skills.Other = append(doc.Skills.Other, token)
		}
	}
}

// splitList splits comma/semicolon/middot separated enumerations
func splitList(line string) []string {
	line = strings.TrimPrefix(line, "- ")
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '•' || r == '·'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// reclassifyEducation moves experience entries that look like schooling
// into the education section, preserving order.
func reclassifyEducation(doc *types.ResumeDocument) {
	kept := doc.Experience[:0]
	for _, e := range doc.Experience {
		if IsLikelyEducationEntry(e) {
			doc.Education = append(doc.Education, MapExperienceToEducation(e))
			doc.AddWarning("experience entry reclassified as education: " + e.Company)
			continue
		}
		kept = append(kept, e)
	}
	doc.Experience = kept
}
