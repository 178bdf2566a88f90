package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"hixminer/internal/fileutil"
)

type workbookSource struct {
	path string
	file *excelize.File
}

func openWorkbook(path string) (Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return &workbookSource{path: path, file: f}, nil
}

func (s *workbookSource) SheetNames() ([]string, error) {
	return s.file.GetSheetList(), nil
}

// ReadSheet loads a worksheet using its first row as the header. Cell types
// come from the workbook so numeric and boolean cells stay non-text.
func (s *workbookSource) ReadSheet(name string) (*Sheet, error) {
	if !hasSheet(s.file.GetSheetList(), name) {
		return nil, &ReadError{Path: s.path, Sheet: name, Err: ErrSheetNotFound}
	}
	rows, err := s.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &ReadError{Path: s.path, Sheet: name, Err: err}
	}
	sheet := &Sheet{Name: name}
	if len(rows) == 0 {
		return sheet, nil
	}

	width := 0
	for _, raw := range rows {
		width = max(width, len(raw))
	}
	header := make([]string, width)
	copy(header, rows[0])
	sheet.Columns = headerNames(header)

	for r, raw := range rows[1:] {
		row := make([]Value, width)
		for c, cell := range raw {
			if cell == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, &ReadError{Path: s.path, Sheet: name, Err: err}
			}
			typ, err := s.file.GetCellType(name, axis)
			if err != nil {
				return nil, &ReadError{Path: s.path, Sheet: name, Err: fmt.Errorf("cell %s: %w", axis, err)}
			}
			row[c] = workbookValue(cell, typ)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func (s *workbookSource) Close() error {
	return s.file.Close()
}

func workbookValue(raw string, typ excelize.CellType) Value {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return Text(raw)
	case excelize.CellTypeBool:
		return Bool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeError:
		return Null()
	default:
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return Number(f)
		}
		return Text(raw)
	}
}

type workbookSink struct {
	sheet string
}

func (w workbookSink) Write(path string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	const initial = "Sheet1"
	if w.sheet != initial {
		if err := f.SetSheetName(initial, w.sheet); err != nil {
			return fmt.Errorf("name sheet %q: %w", w.sheet, err)
		}
	}

	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(w.sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for c := range cells {
			if c < len(row) {
				cells[c] = row[c].Any()
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(w.sheet, axis, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return fileutil.ReplaceFile(path, func(out io.Writer) error {
		return f.Write(out)
	})
}
