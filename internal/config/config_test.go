package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as existing")
	}
	if cfg.Stages.FormsFile != "forms.json" {
		t.Fatalf("default forms file = %q", cfg.Stages.FormsFile)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("default logging = %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("output dir not expanded: %q", cfg.Paths.OutputDir)
	}
}

func TestLoadReadsAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
sprites_dir = "` + dir + `/sprites"

[logging]
format = "JSON"
level = " Debug "
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Paths.SpritesDir != filepath.Join(dir, "sprites") {
		t.Fatalf("sprites dir = %q", cfg.Paths.SpritesDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not canonicalized: %+v", cfg.Logging)
	}
	// Unset sections keep their defaults.
	if cfg.Stages.ResolvedFile != "resolved.json" {
		t.Fatalf("stage defaults lost: %+v", cfg.Stages)
	}
}

func TestValidateRejectsBadFormat(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unsupported log format")
	}
}

func TestValidateRejectsPathyStageFile(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	cfg.Stages.FormsFile = "nested/forms.json"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error for a stage filename with separators")
	}
	if !strings.Contains(err.Error(), "bare filename") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSampleConfigIsCurrent(t *testing.T) {
	sample := SampleConfig()
	for _, key := range []string{"sprites_dir", "archive_dir", "output_dir", "roster_path", "forms_file", "overwrite_existing"} {
		if !strings.Contains(sample, key) {
			t.Fatalf("sample config is missing %q", key)
		}
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.AssetsDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %s not created: %v", dir, err)
		}
	}
}
