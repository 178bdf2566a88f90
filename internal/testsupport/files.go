package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// ReportRows is a small nursing-report fixture with a patient_id and Report column.
var ReportRows = [][]string{
	{"patient_id", "Report"},
	{"1", "Patient reports hoofdpijn and onrust"},
	{"2", "No complaints"},
	{"3", "Apneu episodes, pijn bij zuigen"},
}

// WriteCSV writes rows to dir/name and returns the full path.
func WriteCSV(t testing.TB, dir, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadCSV loads every record of a CSV file.
func ReadCSV(t testing.TB, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}
