package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"hixminer/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// Output paths point inside that directory and logging stays quiet.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Path = filepath.Join(base, "out", "matches.csv")
	cfgVal.Cloud.Path = filepath.Join(base, "out", "wordcloud.png")
	cfgVal.Cloud.Width = 200
	cfgVal.Cloud.Height = 200
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithInput points the config at a source file and sheet.
func WithInput(path, sheet string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.File = path
		b.cfg.Input.Sheet = sheet
	}
}

// WithKeywords replaces the configured keyword terms.
func WithKeywords(terms ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Keywords.Terms = terms
	}
}

// WithOutput overrides the result table destination.
func WithOutput(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Path = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Output.Path))
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
