package structurer

import (
	"strings"

	"github.com/jonathan/resume-adapter/internal/types"
)

// educationKeywords flag institution names, degree abbreviations, and
// certification/training vocabulary across the languages the detector
// covers.
var educationKeywords = []string{
	"university", "université", "universidad", "universität", "universiteit",
	"college", "school", "école", "ecole", "escuela", "scuola", "hochschule",
	"institute", "institut", "instituto", "polytech", "academy", "académie",
	"faculty", "faculté", "facultad",
	"bachelor", "master", "licence", "licenciatura", "laurea",
	"mba", "phd", "doctorate", "doctorat",
	"b.sc", "m.sc", "bsc", "msc", "b.s.", "m.s.", "b.a.", "m.a.",
	"bts", "dut", "deug",
	"degree", "diploma", "diplôme", "diplom",
	"certification", "certificate", "certificat", "certified",
	"bootcamp", "training", "formation", "coursework",
}

// degreeAbbreviations are scanned out of a title to populate the degree
// field when an experience entry is reclassified as education.
var degreeAbbreviations = []string{
	"phd", "mba", "m.sc", "b.sc", "msc", "bsc", "m.s.", "b.s.", "m.a.", "b.a.",
	"bts", "dut", "master", "bachelor", "licence", "doctorate", "doctorat", "ingénieur",
}

// IsLikelyEducationEntry reports whether a loosely-structured
// experience-like entry actually describes schooling. Deterministic
// parses cannot always tell job history from education; this heuristic
// decides whether an entry should be reclassified.
func IsLikelyEducationEntry(e types.ExperienceEntry) bool {
	blob := strings.ToLower(e.Company + " " + e.Title + " " + e.Location + " " + e.Description)
	for _, kw := range educationKeywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

// MapExperienceToEducation converts a misclassified experience entry into
// an education entry. Whichever of company/title looks more like an
// institution name becomes the school (keyword score, tie broken by
// length); the title is scanned for degree abbreviations; start and end
// dates fold into a single free-text range.
func MapExperienceToEducation(e types.ExperienceEntry) types.EducationEntry {
	school := e.Company
	companyScore := educationScore(e.Company)
	titleScore := educationScore(e.Title)
	if titleScore > companyScore || (titleScore == companyScore && len(e.Title) > len(e.Company)) {
		school = e.Title
	}

	degree := ""
	titleLower := strings.ToLower(e.Title)
	for _, abbr := range degreeAbbreviations {
		if strings.Contains(titleLower, abbr) {
			degree = e.Title
			break
		}
	}
	// The school line cannot double as the degree.
	if degree == school {
		degree = ""
	}

	dates := ""
	switch {
	case e.StartDate != "" && e.EndDate != "":
		dates = e.StartDate + " – " + e.EndDate
	case e.StartDate != "":
		dates = e.StartDate
	case e.EndDate != "":
		dates = e.EndDate
	}

	return types.EducationEntry{
		School:   school,
		Degree:   degree,
		Location: e.Location,
		Dates:    dates,
	}
}

// educationScore counts education keyword hits in a single field
func educationScore(s string) int {
	lowered := strings.ToLower(s)
	score := 0
	for _, kw := range educationKeywords {
		if strings.Contains(lowered, kw) {
			score++
		}
	}
	return score
}
