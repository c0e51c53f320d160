package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "crlf normalized",
			input:    "EXPERIENCE\r\nAcme Corp\r\n",
			expected: "EXPERIENCE\nAcme Corp",
		},
		{
			name:     "bullet glyphs unified",
			input:    "• Built the API\n● Shipped  the   frontend\n- Led onboarding",
			expected: "- Built the API\n- Shipped the frontend\n- Led onboarding",
		},
		{
			name:     "excessive blank lines collapsed",
			input:    "EXPERIENCE\n\n\n\n\nAcme Corp",
			expected: "EXPERIENCE\n\nAcme Corp",
		},
		{
			name:     "nbsp and multiple spaces",
			input:    "Jane Doe    Software  Engineer",
			expected: "Jane Doe Software Engineer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
