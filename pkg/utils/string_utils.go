package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes characters and drops combining marks, turning
// e.g. "Sắp tới" into "Sap toi".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes a backend status/priority string for comparison: trimmed,
// lower-cased, diacritics stripped. The backend stores these as free text
// with inconsistent casing and accenting, so every lookup goes through here.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Diacritic stripping is best-effort; lower-cased trimmed input is
		// still an acceptable comparison key.
		return s
	}
	// The Vietnamese đ survives NFD decomposition, fold it by hand.
	return strings.ReplaceAll(folded, "đ", "d")
}

// NewNullString is a helper for string pointers, returning nil if string is empty.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
