// Package stopwords holds the language-specific word lists removed from the
// corpus before frequency visualization.
package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"hixminer/internal/language"
	"hixminer/internal/textnorm"
)

// ErrUnknownLanguage reports a language without a built-in list.
var ErrUnknownLanguage = errors.New("no built-in stopwords for language")

// Set is an immutable set of tokens, trimmed and folded the way the
// tokenizer folds text.
// The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

// New builds a set from words, normalizing each and skipping blanks.
func New(words ...string) Set {
	s := Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = textnorm.Fold(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// Contains reports whether token is a stopword.
func (s Set) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of distinct stopwords.
func (s Set) Len() int { return len(s.words) }

// Words returns the stopwords in lexical order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

// Union returns a new set holding the words of s and every other set.
func (s Set) Union(others ...Set) Set {
	total := len(s.words)
	for _, o := range others {
		total += len(o.words)
	}
	merged := Set{words: make(map[string]struct{}, total)}
	for w := range s.words {
		merged.words[w] = struct{}{}
	}
	for _, o := range others {
		for w := range o.words {
			merged.words[w] = struct{}{}
		}
	}
	return merged
}

// Builtin returns the built-in list for a language code or name.
func Builtin(lang string) (Set, error) {
	code := language.Code(lang)
	words, ok := builtin[code]
	if !ok {
		return Set{}, fmt.Errorf("%w %s (%q)", ErrUnknownLanguage, language.DisplayName(lang), lang)
	}
	return New(words...), nil
}

// Languages lists the codes with a built-in list.
func Languages() []string {
	out := make([]string, 0, len(builtin))
	for code := range builtin {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}

// LoadFile reads one stopword per line. Blank lines and lines starting with
// '#' are ignored.
func LoadFile(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open stopword file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return Set{}, fmt.Errorf("read stopword file: %w", err)
	}
	return New(words...), nil
}

// Options selects the stopwords for a run.
type Options struct {
	Languages []string
	Extra     []string
	File      string
}

// Resolve combines the built-in lists for every language with the extra
// words and the optional stopword file.
func Resolve(opts Options) (Set, error) {
	set := New(opts.Extra...)
	for _, lang := range language.NormalizeList(opts.Languages) {
		list, err := Builtin(lang)
		if err != nil {
			return Set{}, err
		}
		set = set.Union(list)
	}
	if path := strings.TrimSpace(opts.File); path != "" {
		fromFile, err := LoadFile(path)
		if err != nil {
			return Set{}, err
		}
		set = set.Union(fromFile)
	}
	return set, nil
}
