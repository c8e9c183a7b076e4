package config

import (
	"fmt"
	"strings"
)

// normalize expands every path field and canonicalizes log settings.
// Empty fields are backfilled from defaults so a sparse config file still
// yields a complete Config.
func (c *Config) normalize() error {
	defaults := Default()

	fillString(&c.Paths.SpritesDir, defaults.Paths.SpritesDir)
	fillString(&c.Paths.ArchiveDir, defaults.Paths.ArchiveDir)
	fillString(&c.Paths.OutputDir, defaults.Paths.OutputDir)
	fillString(&c.Paths.AssetsDir, defaults.Paths.AssetsDir)
	fillString(&c.Paths.RosterPath, defaults.Paths.RosterPath)

	fillString(&c.Stages.FormsFile, defaults.Stages.FormsFile)
	fillString(&c.Stages.ReferenceFile, defaults.Stages.ReferenceFile)
	fillString(&c.Stages.ResolvedFile, defaults.Stages.ResolvedFile)
	fillString(&c.Stages.ReportFile, defaults.Stages.ReportFile)
	fillString(&c.Stages.ManifestFile, defaults.Stages.ManifestFile)

	fillString(&c.Logging.Format, defaults.Logging.Format)
	fillString(&c.Logging.Level, defaults.Logging.Level)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	for _, field := range []*string{
		&c.Paths.SpritesDir,
		&c.Paths.ArchiveDir,
		&c.Paths.OutputDir,
		&c.Paths.AssetsDir,
		&c.Paths.RosterPath,
	} {
		expanded, err := ExpandPath(*field)
		if err != nil {
			return fmt.Errorf("normalize paths: %w", err)
		}
		*field = expanded
	}

	return nil
}

func fillString(field *string, fallback string) {
	if strings.TrimSpace(*field) == "" {
		*field = fallback
	}
}
