package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for storage:
//   - trims leading/trailing whitespace
//   - compresses any run of whitespace into one space
//   - composes Unicode into NFC, so "ä" typed as a+U+0308 becomes U+00E4
//
// Case is preserved.
func NormalizeText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	return norm.NFC.String(text)
}

// NormalizeWord returns the dedup key for a Finnish word: NormalizeText
// followed by full Unicode case folding. Diacritics (ä, ö, å) are kept,
// so "sää" and "saa" stay distinct while "Sää" and "SÄÄ" collapse.
func NormalizeWord(word string) string {
	text := NormalizeText(word)
	if text == "" {
		return ""
	}
	// A Caser carries state and must not be shared, so build one per call.
	return norm.NFC.String(cases.Fold().String(text))
}
