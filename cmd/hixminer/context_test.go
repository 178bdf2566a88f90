package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"hixminer/internal/logging"
)

func TestNewRunCarriesValidatedConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	cc := newCommandContext(&globalFlags{config: env.configPath, logLevel: "error"})

	r, err := cc.newRun(&cobra.Command{})
	if err != nil {
		t.Fatalf("newRun: %v", err)
	}
	cfg, err := cc.ensureConfig()
	if err != nil {
		t.Fatalf("ensureConfig: %v", err)
	}
	if r.cfg != cfg {
		t.Fatal("run should share the loaded configuration")
	}
	if r.cfg.Input.File != env.inputPath {
		t.Fatalf("unexpected input file %q", r.cfg.Input.File)
	}
	if id, ok := logging.RunIDFromContext(r.ctx); !ok || id == "" {
		t.Fatal("expected a run id on the context")
	}
}

func TestNewRunReportsConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[keywords]\nmode = \"fuzzy\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cc := newCommandContext(&globalFlags{config: path})

	if r, err := cc.newRun(&cobra.Command{}); err == nil {
		t.Fatalf("expected an invalid keywords.mode to fail, got run %+v", r)
	}
}
