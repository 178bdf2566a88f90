package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// databaseSource treats every user table of a SQLite file as a sheet.
type databaseSource struct {
	path string
	db   *sql.DB
}

func openDatabase(path string) (Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("open sqlite db: %w", err)}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &ReadError{Path: path, Err: fmt.Errorf("open sqlite db: %w", err)}
	}
	return &databaseSource{path: path, db: db}, nil
}

func (s *databaseSource) SheetNames() ([]string, error) {
	rows, err := s.db.QueryContext(context.Background(),
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: fmt.Errorf("list tables: %w", err)}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &ReadError{Path: s.path, Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	return names, nil
}

func (s *databaseSource) ReadSheet(name string) (*Sheet, error) {
	names, err := s.SheetNames()
	if err != nil {
		return nil, err
	}
	if !hasSheet(names, name) {
		return nil, &ReadError{Path: s.path, Sheet: name, Err: ErrSheetNotFound}
	}

	rows, err := s.db.QueryContext(context.Background(), "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return nil, &ReadError{Path: s.path, Sheet: name, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &ReadError{Path: s.path, Sheet: name, Err: err}
	}
	sheet := &Sheet{Name: name, Columns: headerNames(cols)}
	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &ReadError{Path: s.path, Sheet: name, Err: err}
		}
		row := make([]Value, len(cols))
		for i, v := range raw {
			row[i] = FromAny(v)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ReadError{Path: s.path, Sheet: name, Err: err}
	}
	return sheet, nil
}

func (s *databaseSource) Close() error {
	return s.db.Close()
}

// databaseSink replaces a single table inside the target database and
// leaves any other tables untouched.
type databaseSink struct {
	table string
}

func (d databaseSink) Write(path string, t *Table) (err error) {
	if len(t.Columns) == 0 {
		return errors.New("write sqlite table: no columns")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(d.table)); err != nil {
		return fmt.Errorf("drop table %q: %w", d.table, err)
	}
	defs := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		defs[i] = quoteIdent(col)
		marks[i] = "?"
	}
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(d.table), strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("create table %q: %w", d.table, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(d.table), strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for n, row := range t.Rows {
		for i := range args {
			args[i] = nil
			if i < len(row) {
				args[i] = row[i].Any()
			}
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", n+1, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
