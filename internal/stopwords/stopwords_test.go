package stopwords

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNewNormalizesWords(t *testing.T) {
	set := New(" De ", "HET", "", "  ", "de")
	if set.Len() != 2 {
		t.Fatalf("expected 2 words, got %d (%v)", set.Len(), set.Words())
	}
	if !set.Contains("de") || !set.Contains("het") {
		t.Fatalf("missing normalized words: %v", set.Words())
	}
	if set.Contains("De") {
		t.Fatal("Contains must compare normalized tokens only")
	}
}

func TestNewFoldsLikeTheTokenizer(t *testing.T) {
	// Decomposed accents, as written by editors saving NFD text.
	set := New("e\u0301e\u0301n", "\u039f\u0394\u039f\u03a3")
	if !set.Contains("\u00e9\u00e9n") {
		t.Fatalf("NFD stopword should match its composed token: %q", set.Words())
	}
	if !set.Contains("\u03bf\u03b4\u03bf\u03c2") {
		t.Fatalf("final sigma should fold like a token: %q", set.Words())
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 words, got %q", set.Words())
	}
}

func TestZeroSetIsEmpty(t *testing.T) {
	var set Set
	if set.Contains("de") || set.Len() != 0 {
		t.Fatal("zero set should be empty")
	}
}

func TestBuiltinDutchList(t *testing.T) {
	set, err := Builtin("dutch")
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if set.Len() != 40 {
		t.Fatalf("expected 40 Dutch stopwords, got %d", set.Len())
	}
	for _, w := range []string{"de", "het", "ik", "onder"} {
		if !set.Contains(w) {
			t.Errorf("expected %q in Dutch stopwords", w)
		}
	}
	if set.Contains("pijn") {
		t.Error("keyword leaked into stopwords")
	}
}

func TestBuiltinUnknownLanguage(t *testing.T) {
	_, err := Builtin("klingon")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestResolveCombinesSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	content := "# ward jargon\npt\n\n  Mg  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Resolve(Options{Languages: []string{"nl", "nld"}, Extra: []string{"dd"}, File: path})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, w := range []string{"de", "dd", "pt", "mg"} {
		if !set.Contains(w) {
			t.Errorf("expected %q in resolved set", w)
		}
	}
	if set.Contains("# ward jargon") {
		t.Error("comment line loaded as stopword")
	}
}

func TestResolveMissingFile(t *testing.T) {
	_, err := Resolve(Options{File: filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Fatal("expected error for missing stopword file")
	}
}

func TestLanguages(t *testing.T) {
	if got := Languages(); !slices.Equal(got, []string{"en", "nl"}) {
		t.Fatalf("Languages = %v", got)
	}
}
