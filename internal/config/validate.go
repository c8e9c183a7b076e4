package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogFormats = map[string]bool{"console": true, "json": true}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the normalized configuration for values no command could
// run with.
func (c *Config) Validate() error {
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	for name, value := range map[string]string{
		"stages.forms_file":     c.Stages.FormsFile,
		"stages.reference_file": c.Stages.ReferenceFile,
		"stages.resolved_file":  c.Stages.ResolvedFile,
		"stages.report_file":    c.Stages.ReportFile,
		"stages.manifest_file":  c.Stages.ManifestFile,
	} {
		if strings.ContainsAny(value, "/\\") {
			return fmt.Errorf("%s: %q must be a bare filename", name, value)
		}
	}

	return nil
}

// EnsureDirectories creates the output directories a run writes into.
// Input directories are left alone; their absence is the invoking stage's
// error to report.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.AssetsDir} {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}
