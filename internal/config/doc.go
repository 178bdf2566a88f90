// Package config loads, normalizes, and validates hixminer configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// HIXMINER_LOG_LEVEL. The Config type centralizes every knob the CLI needs:
// input workbook and columns, keywords, stopwords, output destinations and
// logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical match modes, and clear validation errors.
package config
