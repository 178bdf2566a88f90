package textmine

import (
	"encoding/json"
	"errors"
	"slices"

	"hixminer/internal/stopwords"
)

// ErrEmptyCorpus reports that no words are left to visualize.
var ErrEmptyCorpus = errors.New("no words available to generate a word cloud")

// Corpus is an ordered multiset of tokens collected across a pass.
type Corpus struct {
	tokens []string
}

// NewCorpus builds a corpus holding tokens in order.
func NewCorpus(tokens ...string) Corpus {
	return Corpus{tokens: slices.Clone(tokens)}
}

func (c *Corpus) add(tokens ...string) {
	c.tokens = append(c.tokens, tokens...)
}

// Len returns the number of token occurrences.
func (c Corpus) Len() int { return len(c.tokens) }

// Tokens returns a copy of the token occurrences in scan order.
func (c Corpus) Tokens() []string { return slices.Clone(c.tokens) }

func (c Corpus) MarshalJSON() ([]byte, error) {
	if c.tokens == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.tokens)
}

// WordCount is a distinct token and its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies counts every distinct token, most frequent first. Ties keep
// the order in which the words first appeared.
func (c Corpus) Frequencies() []WordCount {
	index := make(map[string]int)
	var counts []WordCount
	for _, tok := range c.tokens {
		if i, ok := index[tok]; ok {
			counts[i].Count++
			continue
		}
		index[tok] = len(counts)
		counts = append(counts, WordCount{Word: tok, Count: 1})
	}
	slices.SortStableFunc(counts, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	return counts
}

// Top returns at most n entries of Frequencies. n <= 0 returns all of them.
func (c Corpus) Top(n int) []WordCount {
	freqs := c.Frequencies()
	if n > 0 && len(freqs) > n {
		freqs = freqs[:n]
	}
	return freqs
}

// FilterStopwords keeps every occurrence whose token is not a stopword,
// preserving order and multiplicity. An empty result yields ErrEmptyCorpus.
func FilterStopwords(corpus Corpus, sw stopwords.Set) (Corpus, error) {
	kept := make([]string, 0, len(corpus.tokens))
	for _, tok := range corpus.tokens {
		if sw.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return Corpus{}, ErrEmptyCorpus
	}
	return Corpus{tokens: kept}, nil
}
