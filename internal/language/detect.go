// Package language provides a coarse language classifier and the
// enforcement engine that reverts translation drift introduced by the
// adaptation model.
//
// The detector is intentionally loose: it exists to notice that a field
// drifted away from the source document's language, not to classify
// arbitrary text. It must never be presented to end users as ground truth.
package language

import "strings"

// Unknown is returned when no script or stopword signal matches
const Unknown = "unknown"

// scriptRange maps a contiguous rune range to a language code.
// Script is a near-certain signal, so any hit short-circuits the
// stopword scoring entirely.
type scriptRange struct {
	lo, hi rune
	code   string
}

// Ranges are checked in order; Japanese kana is listed after CJK to match
// the ideograph-first behavior of the reference tables.
var scriptRanges = []scriptRange{
	{0x0600, 0x06FF, "ar"}, // Arabic
	{0x4E00, 0x9FFF, "zh"}, // CJK unified ideographs
	{0x3040, 0x30FF, "ja"}, // Hiragana + Katakana
	{0xAC00, 0xD7AF, "ko"}, // Hangul syllables
}

// candidate pairs a language code with a small hand-picked stopword list.
// Stopwords are matched padded with spaces to avoid substring false
// positives (" the " rather than "the").
type candidate struct {
	code      string
	stopwords []string
}

// Candidate order matters: score ties keep the first-encountered language.
var candidates = []candidate{
	{"fr", []string{"le", "la", "les", "et", "des", "une", "pour", "avec", "chez", "sur"}},
	{"en", []string{"the", "and", "of", "with", "for", "to", "at", "in"}},
	{"es", []string{"el", "los", "las", "y", "para", "con", "una", "del"}},
	{"it", []string{"il", "gli", "di", "per", "con", "presso", "della"}},
	{"de", []string{"der", "die", "das", "und", "mit", "bei", "von", "für"}},
	{"pt", []string{"o", "os", "as", "em", "para", "com", "uma", "do"}},
	{"nl", []string{"de", "het", "een", "en", "met", "voor", "bij", "van"}},
	{"tr", []string{"ve", "bir", "için", "ile", "olarak", "bu"}},
}

// Detect classifies text into one of the candidate language codes
// or Unknown when nothing matches.
func Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Unknown
	}

	for _, r := range text {
		for _, sr := range scriptRanges {
			if r >= sr.lo && r <= sr.hi {
				return sr.code
			}
		}
	}

	padded := pad(text)

	best := Unknown
	bestScore := 0
	for _, c := range candidates {
		score := 0
		for _, w := range c.stopwords {
			score += strings.Count(padded, " "+w+" ")
		}
		if score > bestScore {
			best = c.code
			bestScore = score
		}
	}

	return best
}

// pad lowercases the text, turns punctuation into spaces, and wraps the
// result in spaces so every word has a boundary on both sides.
func pad(text string) string {
	lowered := strings.ToLower(text)
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', ';', ':', '!', '?', '(', ')', '[', ']', '"', '\'', '\n', '\r', '\t', '/', '|':
			return ' '
		}
		return r
	}, lowered)
	return " " + mapped + " "
}
