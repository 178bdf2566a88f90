package config

import (
	"fmt"
	"os"
	"strings"

	"hixminer/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizeInput(); err != nil {
		return err
	}
	c.normalizeKeywords()
	if err := c.normalizeStopwords(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeCloud(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeInput() error {
	var err error
	if c.Input.File, err = expandPath(strings.TrimSpace(c.Input.File)); err != nil {
		return fmt.Errorf("input.file: %w", err)
	}
	c.Input.Sheet = strings.TrimSpace(c.Input.Sheet)
	if strings.TrimSpace(c.Input.IDColumn) == "" {
		c.Input.IDColumn = defaultIDColumn
	}
	if strings.TrimSpace(c.Input.TextColumn) == "" {
		c.Input.TextColumn = defaultTextColumn
	}
	return nil
}

func (c *Config) normalizeKeywords() {
	terms := c.Keywords.Terms[:0:0]
	for _, term := range c.Keywords.Terms {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	c.Keywords.Terms = terms
	c.Keywords.Mode = NormalizeMode(c.Keywords.Mode)
}

// NormalizeMode maps the accepted spellings of a match mode onto its
// canonical name. Unknown values are returned lowercased for Validate to
// reject.
func NormalizeMode(mode string) string {
	switch value := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(mode, "-", "_"))); value {
	case "", "whole_word", "whole", "word", "exact":
		return ModeWholeWord
	case "substring", "sub", "partial":
		return ModeSubstring
	default:
		return value
	}
}

func (c *Config) normalizeStopwords() error {
	c.Stopwords.Languages = language.NormalizeList(c.Stopwords.Languages)
	extra := c.Stopwords.Extra[:0:0]
	for _, word := range c.Stopwords.Extra {
		if word = strings.TrimSpace(word); word != "" {
			extra = append(extra, word)
		}
	}
	c.Stopwords.Extra = extra
	var err error
	if c.Stopwords.File, err = expandPath(strings.TrimSpace(c.Stopwords.File)); err != nil {
		return fmt.Errorf("stopwords.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	var err error
	if c.Output.Path, err = expandPath(strings.TrimSpace(c.Output.Path)); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	if c.Output.SheetName = strings.TrimSpace(c.Output.SheetName); c.Output.SheetName == "" {
		c.Output.SheetName = defaultSinkSheet
	}
	if c.Output.Table = strings.TrimSpace(c.Output.Table); c.Output.Table == "" {
		c.Output.Table = defaultSinkTable
	}
	return nil
}

func (c *Config) normalizeCloud() error {
	var err error
	if c.Cloud.Path, err = expandPath(strings.TrimSpace(c.Cloud.Path)); err != nil {
		return fmt.Errorf("cloud.path: %w", err)
	}
	if c.Cloud.Width == 0 {
		c.Cloud.Width = defaultCloudWidth
	}
	if c.Cloud.Height == 0 {
		c.Cloud.Height = defaultCloudHeight
	}
	if c.Cloud.MaxWords == 0 {
		c.Cloud.MaxWords = defaultCloudWords
	}
	if c.Cloud.Background = strings.TrimSpace(c.Cloud.Background); c.Cloud.Background == "" {
		c.Cloud.Background = defaultBackground
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("HIXMINER_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
