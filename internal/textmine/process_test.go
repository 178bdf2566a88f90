package textmine_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"hixminer/internal/stopwords"
	"hixminer/internal/table"
	"hixminer/internal/textmine"
)

type memSource struct {
	sheets map[string]*table.Sheet
	order  []string
	err    error
}

func newMemSource(sheets ...*table.Sheet) *memSource {
	src := &memSource{sheets: make(map[string]*table.Sheet)}
	for _, s := range sheets {
		src.sheets[s.Name] = s
		src.order = append(src.order, s.Name)
	}
	return src
}

func (m *memSource) SheetNames() ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return slices.Clone(m.order), nil
}

func (m *memSource) ReadSheet(name string) (*table.Sheet, error) {
	s, ok := m.sheets[name]
	if !ok {
		return nil, &table.ReadError{Sheet: name, Err: table.ErrSheetNotFound}
	}
	return s, nil
}

func (m *memSource) Close() error { return nil }

func reportSheet(name string) *table.Sheet {
	return &table.Sheet{
		Name:    name,
		Columns: []string{"patient_id", "Report", "Datum"},
		Rows: [][]table.Value{
			{table.Number(1), table.Text("Patient reports hoofdpijn and onrust"), table.Text("2024-01-02")},
			{table.Number(2), table.Text("No complaints"), table.Null()},
		},
	}
}

func defaultRequest() textmine.Request {
	return textmine.Request{
		Keywords:   []string{"hoofdpijn", "onrust", "pijn"},
		IDColumn:   "patient_id",
		TextColumn: "Report",
		Mode:       textmine.WholeWord,
	}
}

func TestProcessPicksDefaultSheet(t *testing.T) {
	src := newMemSource(reportSheet("Overzicht"), reportSheet(table.DefaultSheetGuess))
	result, err := textmine.Process(src, defaultRequest())
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if result.Sheet != table.DefaultSheetGuess {
		t.Fatalf("expected default sheet, got %q", result.Sheet)
	}
	if result.Records != 2 || result.Table.Len() != 2 {
		t.Fatalf("unexpected record counts: %d / %d", result.Records, result.Table.Len())
	}
	if !slices.Equal(result.Table.Rows[0].Flags, []int{1, 1, 0}) {
		t.Fatalf("row 1 flags = %v", result.Table.Rows[0].Flags)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestProcessFallsBackToFirstSheet(t *testing.T) {
	src := newMemSource(reportSheet("Blad1"), reportSheet("Blad2"))
	result, err := textmine.Process(src, defaultRequest())
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if result.Sheet != "Blad1" {
		t.Fatalf("expected first sheet, got %q", result.Sheet)
	}
}

func TestProcessSchemaError(t *testing.T) {
	src := newMemSource(reportSheet("Blad1"))
	req := defaultRequest()
	req.Sheet = "Blad1"
	req.IDColumn = "missing_col"

	_, err := textmine.Process(src, req)
	var schemaErr *textmine.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !slices.Equal(schemaErr.Missing, []string{"missing_col"}) {
		t.Fatalf("unexpected missing columns: %v", schemaErr.Missing)
	}
	if !slices.Equal(schemaErr.Available, []string{"patient_id", "Report", "Datum"}) {
		t.Fatalf("unexpected available columns: %v", schemaErr.Available)
	}
}

func TestProcessSchemaErrorReportsBothColumns(t *testing.T) {
	src := newMemSource(reportSheet("Blad1"))
	req := defaultRequest()
	req.IDColumn = "client"
	req.TextColumn = "Notitie"

	_, err := textmine.Process(src, req)
	var schemaErr *textmine.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !slices.Equal(schemaErr.Missing, []string{"client", "Notitie"}) {
		t.Fatalf("unexpected missing columns: %v", schemaErr.Missing)
	}
}

func TestProcessUnknownSheet(t *testing.T) {
	src := newMemSource(reportSheet("Blad1"))
	req := defaultRequest()
	req.Sheet = "Nope"

	_, err := textmine.Process(src, req)
	var readErr *table.ReadError
	if !errors.As(err, &readErr) || !errors.Is(err, table.ErrSheetNotFound) {
		t.Fatalf("expected ReadError wrapping ErrSheetNotFound, got %v", err)
	}
}

func TestProcessEmptySource(t *testing.T) {
	_, err := textmine.Process(newMemSource(), defaultRequest())
	var readErr *table.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError, got %v", err)
	}
}

func TestProcessPropagatesSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	src := newMemSource()
	src.err = boom
	if _, err := textmine.Process(src, defaultRequest()); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestProcessWarnsWithoutKeywords(t *testing.T) {
	src := newMemSource(reportSheet("Blad1"))
	req := defaultRequest()
	req.Keywords = []string{"", "   "}

	result, err := textmine.Process(src, req)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !slices.Equal(result.Warnings, []textmine.Warning{textmine.WarnNoKeywords}) {
		t.Fatalf("expected no-keywords warning, got %v", result.Warnings)
	}
	if got := result.Table.Columns(); !slices.Equal(got, []string{"patient_id"}) {
		t.Fatalf("unexpected columns: %v", got)
	}
	if result.Table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", result.Table.Len())
	}
}

func TestProcessAppliesStopwords(t *testing.T) {
	src := newMemSource(reportSheet("Blad1"))
	req := defaultRequest()
	req.Stopwords = stopwords.New("and", "no")

	result, err := textmine.Process(src, req)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	want := []string{"patient", "reports", "hoofdpijn", "onrust", "complaints"}
	if got := result.Corpus.Tokens(); !slices.Equal(got, want) {
		t.Fatalf("corpus = %v, want %v", got, want)
	}
}

func TestProcessCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rapportage.csv")
	content := "patient_id,Report\n" +
		"1,\"Pijn bij slikken, onrustig\"\n" +
		"2,\n" +
		"3,Apneu en bradycardie\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := table.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer src.Close()

	req := defaultRequest()
	req.Keywords = []string{"pijn", "onrust", "apneu", "bradycard"}
	req.Mode = textmine.Substring

	result, err := textmine.NewProcessor(nil).Process(src, req)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if result.Sheet != "rapportage" {
		t.Fatalf("unexpected sheet name %q", result.Sheet)
	}
	wantFlags := [][]int{{1, 1, 0, 0}, {0, 0, 0, 0}, {0, 0, 1, 1}}
	for i, row := range result.Table.Rows {
		if !slices.Equal(row.Flags, wantFlags[i]) {
			t.Fatalf("row %d flags = %v, want %v", i+1, row.Flags, wantFlags[i])
		}
	}
	if id, _ := result.Table.Rows[2].ID.AsText(); id != "3" {
		t.Fatalf("expected id passed through as text, got %v", result.Table.Rows[2].ID)
	}
}
