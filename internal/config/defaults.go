package config

const (
	defaultConfigPath  = "~/.config/hixminer/config.toml"
	projectConfigName  = "hixminer.toml"
	defaultIDColumn    = "patient_id"
	defaultTextColumn  = "Report"
	defaultMode        = ModeWholeWord
	defaultStopwords   = "nl"
	defaultSinkSheet   = "Sheet1"
	defaultSinkTable   = "keyword_matches"
	defaultCloudWidth  = 800
	defaultCloudHeight = 800
	defaultCloudWords  = 500
	defaultBackground  = "white"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Canonical match mode names.
const (
	ModeWholeWord = "whole_word"
	ModeSubstring = "substring"
)

// DefaultKeywords are the terms scanned for when the configuration names none.
var DefaultKeywords = []string{"bradycard", "onrust", "apneu", "pijn", "hoofdpijn"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			IDColumn:   defaultIDColumn,
			TextColumn: defaultTextColumn,
		},
		Keywords: Keywords{
			Terms: append([]string(nil), DefaultKeywords...),
			Mode:  defaultMode,
		},
		Stopwords: Stopwords{
			Languages: []string{defaultStopwords},
		},
		Output: Output{
			SheetName: defaultSinkSheet,
			Table:     defaultSinkTable,
		},
		Cloud: Cloud{
			Width:      defaultCloudWidth,
			Height:     defaultCloudHeight,
			MaxWords:   defaultCloudWords,
			Background: defaultBackground,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
