// Package ingestion cleans raw extracted resume text (OCR or PDF text
// layers) into normalized plain text while preserving document structure.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// bulletGlyphs are the marker characters PDF extractors produce for list
// items; they all normalize to "- " so downstream section parsing sees a
// single bullet style.
var bulletGlyphs = []string{"•", "●", "▪", "◦", "·", "‣", "*"}

// CleanText normalizes raw extracted text: line endings, non-breaking
// spaces, bullet glyphs, per-line whitespace, and runs of blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, " ", " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes a single line while keeping its role in the
// document visible: bullets stay bullets, everything else collapses to
// single-spaced text.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
			return "- " + multiSpace.ReplaceAllString(rest, " ")
		}
	}
	if strings.HasPrefix(trimmed, "- ") {
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "- "))
		return "- " + multiSpace.ReplaceAllString(rest, " ")
	}

	return multiSpace.ReplaceAllString(trimmed, " ")
}
