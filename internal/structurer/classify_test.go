package structurer

import (
	"testing"

	"github.com/jonathan/resume-adapter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestIsLikelyEducationEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    types.ExperienceEntry
		expected bool
	}{
		{
			name:     "university in company",
			entry:    types.ExperienceEntry{Company: "Stanford University", Title: "Student"},
			expected: true,
		},
		{
			name:     "degree in title",
			entry:    types.ExperienceEntry{Company: "EPFL", Title: "Master in Computer Science"},
			expected: true,
		},
		{
			name:     "french formation in description",
			entry:    types.ExperienceEntry{Company: "OpenClassrooms", Title: "", Description: "Formation développeur web"},
			expected: true,
		},
		{
			name:     "regular job",
			entry:    types.ExperienceEntry{Company: "Acme Corp", Title: "Backend Engineer", Location: "Berlin"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLikelyEducationEntry(tt.entry))
		})
	}
}

func TestMapExperienceToEducation_CompanyWins(t *testing.T) {
	entry := types.ExperienceEntry{Company: "Stanford University", Title: "Student"}

	edu := MapExperienceToEducation(entry)
	assert.Equal(t, "Stanford University", edu.School)
	assert.Empty(t, edu.Degree)
	assert.Empty(t, edu.Dates)
}

func TestMapExperienceToEducation_TitleWins(t *testing.T) {
	entry := types.ExperienceEntry{Company: "Acme", Title: "Université de Lyon"}

	edu := MapExperienceToEducation(entry)
	assert.Equal(t, "Université de Lyon", edu.School)
}

func TestMapExperienceToEducation_DegreeFromTitle(t *testing.T) {
	entry := types.ExperienceEntry{
		Company:   "Massachusetts Institute of Technology",
		Title:     "M.Sc. Electrical Engineering",
		StartDate: "2016-09",
		EndDate:   "2018-06",
	}

	edu := MapExperienceToEducation(entry)
	assert.Equal(t, "Massachusetts Institute of Technology", edu.School)
	assert.Equal(t, "M.Sc. Electrical Engineering", edu.Degree)
	assert.Equal(t, "2016-09 – 2018-06", edu.Dates)
}

func TestMapExperienceToEducation_SingleDate(t *testing.T) {
	entry := types.ExperienceEntry{Company: "Harvard College", EndDate: "2020-05"}

	edu := MapExperienceToEducation(entry)
	assert.Equal(t, "2020-05", edu.Dates)
}
