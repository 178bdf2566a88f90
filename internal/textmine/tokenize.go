package textmine

import (
	"strings"
	"unicode"

	"hixminer/internal/table"
	"hixminer/internal/textnorm"
)

// Tokenize lowercases text and splits it into maximal runs of Unicode
// letters and digits. Everything else separates tokens and is dropped.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.FieldsFunc(textnorm.Fold(text), isSeparator)
}

// TokenizeValue tokenizes a cell. Null, numeric and boolean cells carry no
// text and yield no tokens.
func TokenizeValue(v table.Value) []string {
	text, ok := v.AsText()
	if !ok {
		return nil
	}
	return Tokenize(text)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
