package language

import (
	"fmt"

	"github.com/jonathan/resume-adapter/internal/types"
)

// EnforceOriginalLanguage reverts fields the adaptation model translated
// away from the source document's language. Entries are zipped positionally
// against the original up to the shorter array; a length mismatch is
// recorded as a warning on the adapted document rather than silently
// truncating the check.
//
// A field is reverted only when its detected language is neither Unknown
// nor sourceLang, and the corresponding original value is non-empty. The
// adapted document is mutated in place and returned; callers needing a
// pristine copy must Clone first.
func EnforceOriginalLanguage(adapted, original *types.ResumeDocument, sourceLang string) *types.ResumeDocument {
	if adapted == nil || original == nil || sourceLang == "" || sourceLang == Unknown {
		return adapted
	}

	if len(adapted.Experience) != len(original.Experience) {
		adapted.AddWarning(fmt.Sprintf("language check: experience entry count changed from %d to %d; extra entries were not checked",
			len(original.Experience), len(adapted.Experience)))
	}
	for i := 0; i < len(adapted.Experience) && i < len(original.Experience); i++ {
		adm, org := &adapted.Experience[i], &original.Experience[i]
		revert(&adm.Title, org.Title, sourceLang)
		revert(&adm.Company, org.Company, sourceLang)
		revert(&adm.Location, org.Location, sourceLang)
		revertBullets(adm.Bullets, org.Bullets, sourceLang)
	}

	if len(adapted.Projects) != len(original.Projects) {
		adapted.AddWarning(fmt.Sprintf("language check: project count changed from %d to %d; extra entries were not checked",
			len(original.Projects), len(adapted.Projects)))
	}
	for i := 0; i < len(adapted.Projects) && i < len(original.Projects); i++ {
		adm, org := &adapted.Projects[i], &original.Projects[i]
		revert(&adm.Name, org.Name, sourceLang)
		revertBullets(adm.Bullets, org.Bullets, sourceLang)
	}

	if len(adapted.Education) != len(original.Education) {
		adapted.AddWarning(fmt.Sprintf("language check: education entry count changed from %d to %d; extra entries were not checked",
			len(original.Education), len(adapted.Education)))
	}
	for i := 0; i < len(adapted.Education) && i < len(original.Education); i++ {
		adm, org := &adapted.Education[i], &original.Education[i]
		revert(&adm.School, org.School, sourceLang)
		revert(&adm.Degree, org.Degree, sourceLang)
		revert(&adm.Location, org.Location, sourceLang)
	}

	return adapted
}

// revert overwrites *field with original when the field's detected
// language diverges from sourceLang. Never overwrites with an empty string.
func revert(field *string, original, sourceLang string) {
	if original == "" {
		return
	}
	detected := Detect(*field)
	if detected != Unknown && detected != sourceLang {
		*field = original
	}
}

// revertBullets applies revert positionally over two bullet lists
func revertBullets(adapted, original []string, sourceLang string) {
	for i := 0; i < len(adapted) && i < len(original); i++ {
		revert(&adapted[i], original[i], sourceLang)
	}
}
