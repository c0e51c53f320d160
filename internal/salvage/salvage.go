// Package salvage extracts valid JSON objects from imperfect LLM text output.
//
// Models wrap JSON in markdown fences, prepend prose, leave trailing commas,
// use typographic quotes, and occasionally include comments. Parse applies a
// fixed sequence of repair strategies, cheapest and least destructive first,
// so already-valid JSON is never corrupted by an aggressive rewrite.
package salvage

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	blockComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment   = regexp.MustCompile(`(?m)(^|[ \t])//[^\n]*`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)

	typographicQuotes = strings.NewReplacer(
		"“", `"`, // left double
		"”", `"`, // right double
		"‘", `'`, // left single
		"’", `'`, // right single
	)
)

// Parse returns the first JSON object recoverable from text.
// The attempt order is deliberate: strict parse of the fence-stripped text,
// then brace slicing with conservative comment removal, then quote and
// trailing-comma normalization, and finally trailing-comma removal over the
// whole original text. Exhaustion returns a *ParseError.
func Parse(text string) (map[string]any, error) {
	attempts := 0
	var lastErr error

	try := func(candidate string) (map[string]any, bool) {
		attempts++
		var obj map[string]any
		if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
			lastErr = err
			return nil, false
		}
		return obj, true
	}

	// Attempt 1: fence strip + strict parse.
	cleaned := StripFences(text)
	if obj, ok := try(cleaned); ok {
		return obj, nil
	}

	// Attempt 2: slice between the outermost braces to drop leading and
	// trailing prose, then strip comments conservatively.
	sliced, ok := sliceBraces(cleaned)
	if ok {
		stripped := stripComments(sliced)
		if obj, ok := try(stripped); ok {
			return obj, nil
		}

		// Attempt 3: normalize typographic quotes and trailing commas.
		// Comments are re-stripped because quote normalization can
		// reintroduce them.
		normalized := typographicQuotes.Replace(stripped)
		normalized = trailingComma.ReplaceAllString(normalized, "$1")
		normalized = stripComments(normalized)
		if obj, ok := try(normalized); ok {
			return obj, nil
		}
	}

	// Attempt 4: trailing-comma removal over the entire original text.
	if obj, ok := try(trailingComma.ReplaceAllString(text, "$1")); ok {
		return obj, nil
	}

	return nil, &ParseError{Attempts: attempts, LastErr: lastErr}
}

// StripFences removes markdown code fence wrappers from LLM responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed
// not to.
func StripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// sliceBraces returns the substring between the first '{' and the last '}'
func sliceBraces(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// stripComments removes /* */ blocks and // line comments. Line comments
// are only recognized at line start or after whitespace so that URLs
// containing "//" survive.
func stripComments(text string) string {
	text = blockComment.ReplaceAllString(text, "")
	return lineComment.ReplaceAllString(text, "$1")
}
