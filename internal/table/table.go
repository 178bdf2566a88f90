package table

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSheetGuess is the sheet picked when the caller does not name one
// and the workbook contains it. Nursing reports are exported under this name.
const DefaultSheetGuess = "VPK Rapportage"

var (
	// ErrSheetNotFound reports a sheet or table name absent from the source.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrUnsupportedFormat reports a file extension no reader or writer handles.
	ErrUnsupportedFormat = errors.New("unsupported table format")
)

// ReadError wraps any failure to open a source or load one of its sheets.
type ReadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *ReadError) Error() string {
	where := e.Path
	if where == "" {
		where = "source"
	}
	if e.Sheet != "" {
		return fmt.Sprintf("read sheet %q from %s: %v", e.Sheet, where, e.Err)
	}
	return fmt.Sprintf("read %s: %v", where, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Sheet is one named table of a source. Rows are padded to len(Columns).
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]Value
}

// ColumnIndex returns the position of the named column.
func (s *Sheet) ColumnIndex(name string) (int, bool) {
	if s == nil {
		return -1, false
	}
	for i, col := range s.Columns {
		if col == name {
			return i, true
		}
	}
	return -1, false
}

// Table is an output table handed to a Sink.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// Source yields sheets from a tabular file.
type Source interface {
	SheetNames() ([]string, error)
	ReadSheet(name string) (*Sheet, error)
	Close() error
}

// Sink persists a table to path, replacing any previous content.
type Sink interface {
	Write(path string, t *Table) error
}

// SinkOptions names the sheet or table a sink writes into.
type SinkOptions struct {
	SheetName string
	TableName string
}

const (
	defaultSinkSheet = "Sheet1"
	defaultSinkTable = "keyword_matches"
)

type format int

const (
	formatUnknown format = iota
	formatCSV
	formatTSV
	formatXLSX
	formatSQLite
)

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV
	case ".tsv", ".tab":
		return formatTSV
	case ".xlsx", ".xlsm":
		return formatXLSX
	case ".db", ".sqlite", ".sqlite3":
		return formatSQLite
	default:
		return formatUnknown
	}
}

// Open returns a Source for path, chosen by file extension. Failures are
// reported as *ReadError.
func Open(path string) (Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, &ReadError{Path: path, Err: errors.New("no input file given")}
	}
	switch formatFor(path) {
	case formatCSV:
		return openDelimited(path, ',')
	case formatTSV:
		return openDelimited(path, '\t')
	case formatXLSX:
		return openWorkbook(path)
	case formatSQLite:
		return openDatabase(path)
	default:
		return nil, &ReadError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}
}

// SinkFor returns the Sink matching the extension of path.
func SinkFor(path string, opts SinkOptions) (Sink, error) {
	sheet := strings.TrimSpace(opts.SheetName)
	if sheet == "" {
		sheet = defaultSinkSheet
	}
	tableName := strings.TrimSpace(opts.TableName)
	if tableName == "" {
		tableName = defaultSinkTable
	}
	switch formatFor(path) {
	case formatCSV:
		return delimitedSink{comma: ','}, nil
	case formatTSV:
		return delimitedSink{comma: '\t'}, nil
	case formatXLSX:
		return workbookSink{sheet: sheet}, nil
	case formatSQLite:
		return databaseSink{table: tableName}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// PickSheet resolves the sheet to load. An explicit request is returned as
// is; otherwise DefaultSheetGuess wins when present, then the first sheet.
func PickSheet(names []string, requested string) string {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		return requested
	}
	for _, name := range names {
		if name == DefaultSheetGuess {
			return name
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}

// headerNames fills blank header cells the way spreadsheet readers do so
// every column stays addressable.
func headerNames(raw []string) []string {
	out := make([]string, len(raw))
	for i, name := range raw {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		out[i] = name
	}
	return out
}

func padRow(row []Value, width int) []Value {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]Value, width)
	copy(padded, row)
	return padded
}

func hasSheet(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
