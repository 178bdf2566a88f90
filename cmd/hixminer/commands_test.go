package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestSheetsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sheets", env.inputPath, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sheets: %v", err)
	}
	var infos []sheetInfo
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "reports" || !infos[0].Default || infos[0].Rows != 3 {
		t.Fatalf("unexpected sheets: %+v", infos)
	}
	if !slices.Equal(infos[0].Columns, []string{"patient_id", "Report"}) {
		t.Fatalf("unexpected columns: %v", infos[0].Columns)
	}

	out, _, err = runCLI(t, []string{"sheets"}, env.configPath)
	if err != nil {
		t.Fatalf("sheets: %v", err)
	}
	requireContains(t, out, "patient_id, Report")
}

func TestStopwordsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"stopwords"}, env.configPath)
	if err != nil {
		t.Fatalf("stopwords: %v", err)
	}
	requireContains(t, out, "40 stopwords (Dutch)")

	out, _, err = runCLI(t, []string{"stopwords", "--language", "english", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("stopwords: %v", err)
	}
	var words []string
	if err := json.Unmarshal([]byte(out), &words); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if !slices.Contains(words, "the") || slices.Contains(words, "het") {
		t.Fatalf("unexpected english stopwords: %v", words)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
}

func TestConfigShowAppliesFlagOverrides(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show", "--log-format", "JSON"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[keywords]")
	requireContains(t, out, "format = 'json'")

	if _, _, err := runCLI(t, []string{"config", "show", "--log-level", "loud"}, env.configPath); err == nil {
		t.Fatal("expected validation error for bad log level")
	}
}

func TestConfirm(t *testing.T) {
	var prompt strings.Builder
	ok, err := confirm(strings.NewReader("ja\n"), &prompt, "Continue?")
	if err != nil || !ok {
		t.Fatalf("expected confirmation, got %v %v", ok, err)
	}
	requireContains(t, prompt.String(), "Continue? [y/N]")

	ok, err = confirm(strings.NewReader(""), &prompt, "Continue?")
	if err != nil || ok {
		t.Fatalf("empty answer should decline, got %v %v", ok, err)
	}
}
