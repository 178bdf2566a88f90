// Package main hosts the hixminer CLI entrypoint and command graph.
//
// The Cobra-based command tree loads a nursing-report workbook, flags the
// configured keywords per record, writes the result table and renders the
// stopword-filtered word cloud. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: the text-mining pipeline lives in internal/textmine
// and the file formats in internal/table; commands here only translate flags
// into requests and results into terminal output.
package main
