// Package table reads and writes the tabular files hixminer operates on.
//
// A Source exposes the sheets of a workbook (or the tables of a SQLite
// database, or the single sheet of a CSV file) as ordered rows of typed
// cell values. A Sink persists a Table as a header row followed by one row
// per record. Both are chosen from the file extension by Open and SinkFor.
//
// Cell values are modelled as the Value sum type so callers can tell
// present text apart from missing or non-text cells without inspecting
// dynamic types.
package table
