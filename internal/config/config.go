package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the input and output directory configuration.
type Paths struct {
	// SpritesDir is the primary sprite directory the extractor scans.
	SpritesDir string `toml:"sprites_dir"`
	// ArchiveDir is the second sheet archive the gap filler draws from.
	ArchiveDir string `toml:"archive_dir"`
	// OutputDir receives the stage JSON artifacts and run reports.
	OutputDir string `toml:"output_dir"`
	// AssetsDir receives sliced sprite assets.
	AssetsDir string `toml:"assets_dir"`
	// RosterPath is the external roster description document.
	RosterPath string `toml:"roster_path"`
}

// Stages contains the artifact filenames written under OutputDir.
type Stages struct {
	FormsFile     string `toml:"forms_file"`
	ReferenceFile string `toml:"reference_file"`
	ResolvedFile  string `toml:"resolved_file"`
	ReportFile    string `toml:"report_file"`
	ManifestFile  string `toml:"manifest_file"`
}

// GapFill contains configuration for the gap-fill pass.
type GapFill struct {
	OverwriteExisting bool `toml:"overwrite_existing"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for spritedex.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Stages  Stages  `toml:"stages"`
	GapFill GapFill `toml:"gap_fill"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/spritedex/config.toml")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return is
// the resolved config path; the third reports whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("spritedex.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// FormsPath is the stage-1 artifact location.
func (c *Config) FormsPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Stages.FormsFile)
}

// ReferencePath is the stage-2 artifact location.
func (c *Config) ReferencePath() string {
	return filepath.Join(c.Paths.OutputDir, c.Stages.ReferenceFile)
}

// ResolvedPath is the stage-3 artifact location.
func (c *Config) ResolvedPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Stages.ResolvedFile)
}

// ReportPath is the run report location.
func (c *Config) ReportPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Stages.ReportFile)
}

// ManifestPath is the gap-fill manifest location.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Stages.ManifestFile)
}

// ExpandPath resolves tilde shortcuts and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
