package language

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// spelled maps language names and ISO 639-2/B codes onto ISO 639-1 codes.
var spelled = map[string]string{
	"dutch":      "nl",
	"nederlands": "nl",
	"vlaams":     "nl",
	"flemish":    "nl",
	"dut":        "nl",
	"english":    "en",
	"german":     "de",
	"deutsch":    "de",
	"ger":        "de",
	"french":     "fr",
	"français":   "fr",
	"francais":   "fr",
	"fre":        "fr",
	"frisian":    "fy",
	"frysk":      "fy",
}

var englishNames = display.English.Languages()

// clean lowercases and strips a region suffix ("nl-BE", "en_GB").
func clean(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	return s
}

// Code resolves a language code, tag or name to its ISO 639-1 code.
// Unknown two-letter codes pass through; other unknown input yields "".
func Code(s string) string {
	s = clean(s)
	if s == "" {
		return ""
	}
	if code, ok := spelled[s]; ok {
		return code
	}
	if base, err := language.ParseBase(s); err == nil {
		return base.String()
	}
	if len(s) == 2 {
		return s
	}
	return ""
}

// DisplayName returns the English name of a language, "Unknown" for blank
// input, or the uppercased input when the language is not recognized.
func DisplayName(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	if code := Code(s); code != "" {
		if tag, err := language.Parse(code); err == nil {
			if name := englishNames.Name(tag); name != "" {
				return name
			}
		}
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeList maps every entry through Code and drops blanks and
// duplicates. Unrecognized entries are kept lowercased so validation can
// name them.
func NormalizeList(list []string) []string {
	var out []string
	for _, s := range list {
		code := Code(s)
		if code == "" {
			code = clean(s)
		}
		if code == "" || slices.Contains(out, code) {
			continue
		}
		out = append(out, code)
	}
	return out
}
