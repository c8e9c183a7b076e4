package testsupport

import (
	"path/filepath"
	"testing"

	"spritedex/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SpritesDir = filepath.Join(base, "sprites")
	cfg.Paths.ArchiveDir = filepath.Join(base, "archive")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.RosterPath = filepath.Join(base, "roster.yaml")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithOverwrite enables gap-fill overwrite on the test config.
func WithOverwrite() ConfigOption {
	return func(cfg *config.Config) {
		cfg.GapFill.OverwriteExisting = true
	}
}
