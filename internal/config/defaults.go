package config

const (
	defaultSpritesDir = "~/sprites/main"
	defaultArchiveDir = "~/sprites/archive"
	defaultOutputDir  = "~/.local/share/spritedex/output"
	defaultAssetsDir  = "~/.local/share/spritedex/assets"
	defaultRosterPath = "~/sprites/roster.yaml"

	defaultFormsFile     = "forms.json"
	defaultReferenceFile = "reference.json"
	defaultResolvedFile  = "resolved.json"
	defaultReportFile    = "report.json"
	defaultManifestFile  = "manifest.json"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SpritesDir: defaultSpritesDir,
			ArchiveDir: defaultArchiveDir,
			OutputDir:  defaultOutputDir,
			AssetsDir:  defaultAssetsDir,
			RosterPath: defaultRosterPath,
		},
		Stages: Stages{
			FormsFile:     defaultFormsFile,
			ReferenceFile: defaultReferenceFile,
			ResolvedFile:  defaultResolvedFile,
			ReportFile:    defaultReportFile,
			ManifestFile:  defaultManifestFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
