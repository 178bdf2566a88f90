package textmine_test

import (
	"slices"
	"testing"

	"hixminer/internal/textmine"
)

func TestMatchedKeywordsWholeWord(t *testing.T) {
	got := textmine.MatchedKeywords("the pain is bad", []string{"pain"}, textmine.WholeWord)
	if !slices.Equal(got.Sorted(), []string{"pain"}) {
		t.Fatalf("expected {pain}, got %v", got.Sorted())
	}
	if got := textmine.MatchedKeywords("painless", []string{"pain"}, textmine.WholeWord); got.Len() != 0 {
		t.Fatalf("expected no match for compound, got %v", got.Sorted())
	}
}

func TestMatchedKeywordsSubstring(t *testing.T) {
	got := textmine.MatchedKeywords("painless", []string{"pain"}, textmine.Substring)
	if !slices.Equal(got.Sorted(), []string{"pain"}) {
		t.Fatalf("expected {pain}, got %v", got.Sorted())
	}
	got = textmine.MatchedKeywords("pijnstilling en hoofdpijn", []string{"pijn", "koorts"}, textmine.Substring)
	if !slices.Equal(got.Sorted(), []string{"pijn"}) {
		t.Fatalf("expected {pijn} once, got %v", got.Sorted())
	}
}

func TestMatchedKeywordsSubstringDoesNotSpanTokens(t *testing.T) {
	got := textmine.MatchedKeywords("hoofd pijn", []string{"dpi"}, textmine.Substring)
	if got.Len() != 0 {
		t.Fatalf("expected no cross-token match, got %v", got.Sorted())
	}
}

func TestMatchedKeywordsNormalizesKeywords(t *testing.T) {
	for _, mode := range []textmine.Mode{textmine.WholeWord, textmine.Substring} {
		got := textmine.MatchedKeywords("Pain again", []string{" Pain ", "pain", ""}, mode)
		if !slices.Equal(got.Sorted(), []string{"pain"}) {
			t.Fatalf("mode %s: expected {pain}, got %v", mode, got.Sorted())
		}
	}
}

func TestMatchedKeywordsWithoutTokens(t *testing.T) {
	for _, mode := range []textmine.Mode{textmine.WholeWord, textmine.Substring} {
		if got := textmine.MatchedKeywords(" ... ", []string{"pijn"}, mode); got.Len() != 0 {
			t.Fatalf("mode %s: expected empty result, got %v", mode, got.Sorted())
		}
	}
}

func TestMatchedKeywordsRepetitionIsPresenceOnly(t *testing.T) {
	got := textmine.MatchedKeywords("pijn pijn PIJN", []string{"pijn"}, textmine.WholeWord)
	if got.Len() != 1 {
		t.Fatalf("expected a single match, got %v", got.Sorted())
	}
}

func TestNormalizeKeywordsCollapsesDuplicates(t *testing.T) {
	got := textmine.NormalizeKeywords([]string{"Onrust", " pijn", "", "  ", "ONRUST", "apneu"})
	want := []string{"onrust", "pijn", "apneu"}
	if !slices.Equal(got, want) {
		t.Fatalf("NormalizeKeywords = %v, want %v", got, want)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]textmine.Mode{
		"":           textmine.WholeWord,
		"whole_word": textmine.WholeWord,
		"Whole-Word": textmine.WholeWord,
		"substring":  textmine.Substring,
		" partial ":  textmine.Substring,
	}
	for in, want := range cases {
		got, err := textmine.ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := textmine.ParseMode("regex"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestModeTextRoundTrip(t *testing.T) {
	text, err := textmine.Substring.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var m textmine.Mode
	if err := m.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if m != textmine.Substring || string(text) != "substring" {
		t.Fatalf("unexpected round trip: %q -> %v", text, m)
	}
}
