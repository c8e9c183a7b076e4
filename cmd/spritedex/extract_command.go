package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"spritedex/internal/config"
	"spritedex/internal/extractor"
	"spritedex/internal/logging"
	"spritedex/internal/report"
	"spritedex/internal/stagefile"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "extract [sprites-dir] [out-file]",
		Short: "Scan sprite filenames into a grouped form-key table",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			spritesDir := argOr(args, 0, cfg.Paths.SpritesDir)
			outPath := argOr(args, 1, cfg.FormsPath())
			return runExtract(cmd, cfg, spritesDir, outPath, jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run report as JSON")
	return cmd
}

func runExtract(cmd *cobra.Command, cfg *config.Config, spritesDir, outPath string, jsonOut bool) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	names, err := listImages(spritesDir)
	if err != nil {
		return err
	}
	logger.Info("scanning sprites", "dir", spritesDir, "files", len(names))

	result := extractor.Scan(names)

	rep := report.New("extract")
	rep.RejectedFiles = result.Rejected
	rep.GroupCount = len(result.Groups)
	for _, group := range result.Groups {
		rep.FormCount += len(group)
	}

	release, err := stagefile.Lock(filepath.Dir(outPath))
	if err != nil {
		return err
	}
	defer release()

	if err := stagefile.WriteJSON(outPath, result.Groups); err != nil {
		return err
	}
	if err := stagefile.WriteJSON(reportPathFor(cfg, outPath), rep); err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(cmd, rep)
	}
	printReport(cmd, rep)
	return nil
}

// reportPathFor places the run report next to the stage output, honoring a
// positional output override.
func reportPathFor(cfg *config.Config, outPath string) string {
	return filepath.Join(filepath.Dir(outPath), cfg.Stages.ReportFile)
}
