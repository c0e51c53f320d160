package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_Valid(t *testing.T) {
	doc := `{
		"header": {"full_name": "Jane Doe", "email": "jane@example.com"},
		"experience": [
			{"company": "Acme", "title": "Engineer", "bullets": ["Built the API"]}
		],
		"skills": {"languages": ["Go"]}
	}`
	assert.NoError(t, ValidateResume(doc))
}

func TestValidateResume_MissingFullName(t *testing.T) {
	err := ValidateResume(`{"header": {"email": "jane@example.com"}}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResume_ExperienceMissingCompany(t *testing.T) {
	err := ValidateResume(`{
		"header": {"full_name": "Jane Doe"},
		"experience": [{"title": "Engineer"}]
	}`)
	require.Error(t, err)
}

func TestValidateResume_NotJSON(t *testing.T) {
	assert.Error(t, ValidateResume("not json"))
}
