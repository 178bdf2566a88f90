package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hixminer/internal/fileutil"
)

// delimitedSource exposes a CSV/TSV file as a single sheet named after the
// file stem. Every non-empty cell is text; empty cells are null.
type delimitedSource struct {
	path  string
	comma rune
	name  string
}

func openDelimited(path string, comma rune) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &ReadError{Path: path, Err: errors.New("path is a directory")}
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &delimitedSource{path: path, comma: comma, name: stem}, nil
}

func (s *delimitedSource) SheetNames() ([]string, error) {
	return []string{s.name}, nil
}

func (s *delimitedSource) ReadSheet(name string) (*Sheet, error) {
	if name != "" && name != s.name {
		return nil, &ReadError{Path: s.path, Sheet: name, Err: ErrSheetNotFound}
	}
	file, err := os.Open(s.path)
	if err != nil {
		return nil, &ReadError{Path: s.path, Sheet: s.name, Err: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = s.comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("file has no header row")
		}
		return nil, &ReadError{Path: s.path, Sheet: s.name, Err: err}
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	sheet := &Sheet{Name: s.name, Columns: headerNames(header)}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ReadError{Path: s.path, Sheet: s.name, Err: err}
		}
		row := make([]Value, len(rec))
		for i, cell := range rec {
			if cell == "" {
				continue
			}
			row[i] = Text(cell)
		}
		sheet.Rows = append(sheet.Rows, padRow(row, len(sheet.Columns)))
	}
	return sheet, nil
}

func (s *delimitedSource) Close() error { return nil }

type delimitedSink struct {
	comma rune
}

func (d delimitedSink) Write(path string, t *Table) error {
	return fileutil.ReplaceFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		cw.Comma = d.comma
		if err := cw.Write(t.Columns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		record := make([]string, len(t.Columns))
		for _, row := range t.Rows {
			for i := range record {
				record[i] = ""
				if i < len(row) {
					record[i] = row[i].String()
				}
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}
