package textnorm

import "testing"

func TestFold(t *testing.T) {
	cases := map[string]string{
		"HOOFDPIJN":                "hoofdpijn",
		"Patie\u0308nt":            "pati\u00ebnt",
		"e\u0301e\u0301n":          "\u00e9\u00e9n",
		"\u039f\u0394\u039f\u03a3": "\u03bf\u03b4\u03bf\u03c2",
		"":                         "",
	}
	for in, want := range cases {
		if got := Fold(in); got != want {
			t.Errorf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}
