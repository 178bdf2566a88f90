package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"hixminer/internal/stopwords"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateKeywords(); err != nil {
		return err
	}
	if err := c.validateStopwords(); err != nil {
		return err
	}
	if err := c.validateCloud(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInput() error {
	if strings.TrimSpace(c.Input.IDColumn) == "" {
		return errors.New("input.id_column must be set")
	}
	if strings.TrimSpace(c.Input.TextColumn) == "" {
		return errors.New("input.text_column must be set")
	}
	return nil
}

func (c *Config) validateKeywords() error {
	switch c.Keywords.Mode {
	case ModeWholeWord, ModeSubstring:
		return nil
	default:
		return fmt.Errorf("keywords.mode: unsupported value %q (want %s or %s)", c.Keywords.Mode, ModeWholeWord, ModeSubstring)
	}
}

func (c *Config) validateStopwords() error {
	for _, lang := range c.Stopwords.Languages {
		if _, err := stopwords.Builtin(lang); err != nil {
			return fmt.Errorf("stopwords.languages: %w", err)
		}
	}
	return nil
}

func (c *Config) validateCloud() error {
	if c.Cloud.Width < 0 || c.Cloud.Height < 0 {
		return errors.New("cloud.width and cloud.height must be positive")
	}
	if c.Cloud.MaxWords < 0 {
		return errors.New("cloud.max_words must be positive")
	}
	if _, err := ParseColor(c.Cloud.Background); err != nil {
		return fmt.Errorf("cloud.background: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

var namedColors = map[string]color.RGBA{
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black": {A: 0xff},
}

// ParseColor accepts "white", "black", "#rgb" or "#rrggbb".
func ParseColor(value string) (color.RGBA, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := namedColors[value]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(value, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.RGBA{}, fmt.Errorf("unsupported color %q", value)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unsupported color %q", value)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
