// Package textnorm holds the one text fold shared by tokens, keywords and
// stopwords, so every side of a comparison normalizes the same way.
package textnorm

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold composes s to NFC, so decomposed accents stay inside their word, and
// lowercases it with full Unicode rules, including the Greek final sigma.
func Fold(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}
