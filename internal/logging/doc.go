// Package logging assembles the structured slog loggers used across
// hixminer.
//
// It owns the console and JSON handlers, maps configured levels and output
// paths onto them, and exposes attribute helpers plus context plumbing so
// every line of a pass carries the same run ID. A no-op logger is provided
// for tests and library callers that do not care about output.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits the same field names.
package logging
