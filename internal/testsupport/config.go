package testsupport

import (
	"path/filepath"
	"testing"

	"setdex/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.AnalysesDir = filepath.Join(base, "analyses")
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Logging.Format = "json"

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

// WithGenerations restricts the configured generations to the given codes,
// keeping their default export names.
func WithGenerations(codes ...string) ConfigOption {
	return func(b *configBuilder) {
		selected, err := b.cfg.Select(codes)
		if err != nil {
			b.t.Fatalf("select generations: %v", err)
		}
		b.cfg.Generations = selected
	}
}

// WithExportDB points the SQLite export at a file inside the temp directory.
func WithExportDB() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.ExportDB = filepath.Join(b.baseDir, "setdex.db")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
