package textmine

import (
	"fmt"
	"slices"
	"strings"

	"hixminer/internal/textnorm"
)

// Mode selects how a keyword is compared against tokens.
type Mode int

const (
	// WholeWord matches a keyword only when it equals a token.
	WholeWord Mode = iota
	// Substring matches a keyword anywhere inside a token, so "pijn" is
	// found in "pijnstilling".
	Substring
)

func (m Mode) String() string {
	switch m {
	case Substring:
		return "substring"
	default:
		return "whole_word"
	}
}

// ParseMode accepts "whole_word" (also "whole", "word", "exact") and
// "substring" (also "sub", "partial"). An empty string means WholeWord.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))) {
	case "", "whole_word", "whole", "word", "exact":
		return WholeWord, nil
	case "substring", "sub", "partial":
		return Substring, nil
	default:
		return WholeWord, fmt.Errorf("unknown match mode %q (want whole_word or substring)", s)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Set and Type let Mode back a command-line flag.
func (m *Mode) Set(s string) error { return m.UnmarshalText([]byte(s)) }

func (m *Mode) Type() string { return "mode" }

// KeywordSet holds matched keywords. Iteration order is unspecified.
type KeywordSet map[string]struct{}

// Has reports whether keyword (already normalized) matched.
func (s KeywordSet) Has(keyword string) bool {
	_, ok := s[keyword]
	return ok
}

func (s KeywordSet) Len() int { return len(s) }

// Sorted returns the matched keywords in lexical order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// NormalizeKeyword trims and lowercases a keyword with the tokenizer's
// folding rules.
func NormalizeKeyword(keyword string) string {
	return textnorm.Fold(strings.TrimSpace(keyword))
}

// NormalizeKeywords normalizes every keyword, drops the ones that end up
// empty and keeps only the first occurrence of duplicates. Order follows
// the input.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = NormalizeKeyword(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// MatchedKeywords returns the normalized keywords present in text under
// mode. Text without tokens matches nothing.
func MatchedKeywords(text string, keywords []string, mode Mode) KeywordSet {
	return matchTokens(Tokenize(text), NormalizeKeywords(keywords), mode)
}

// matchTokens expects keywords already normalized.
func matchTokens(tokens []string, keywords []string, mode Mode) KeywordSet {
	matched := make(KeywordSet)
	if len(tokens) == 0 || len(keywords) == 0 {
		return matched
	}

	present := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := present[tok]; ok {
			continue
		}
		present[tok] = struct{}{}
		unique = append(unique, tok)
	}

	for _, kw := range keywords {
		switch mode {
		case Substring:
			for _, tok := range unique {
				if strings.Contains(tok, kw) {
					matched[kw] = struct{}{}
					break
				}
			}
		default:
			if _, ok := present[kw]; ok {
				matched[kw] = struct{}{}
			}
		}
	}
	return matched
}
