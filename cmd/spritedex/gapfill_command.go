package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"spritedex/internal/extractor"
	"spritedex/internal/gapfill"
	"spritedex/internal/logging"
	"spritedex/internal/resolver"
	"spritedex/internal/roster"
	"spritedex/internal/sheet"
	"spritedex/internal/stagefile"
)

func newGapfillCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "gapfill [resolved-file] [archive-dir] [out-dir]",
		Short: "Slice archive sheets for variants missing from the name table",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			resolvedPath := argOr(args, 0, cfg.ResolvedPath())
			archiveDir := argOr(args, 1, cfg.Paths.ArchiveDir)
			outDir := argOr(args, 2, cfg.Paths.AssetsDir)

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			var resolved map[string][]resolver.ResolvedForm
			if err := stagefile.ReadJSON(resolvedPath, &resolved); err != nil {
				return err
			}

			names, err := listImages(archiveDir)
			if err != nil {
				return err
			}
			archive := extractor.Scan(names)

			opts := gapfill.Options{
				Resolved:      resolved,
				Archive:       archive.Groups,
				ArchiveDir:    archiveDir,
				OutDir:        outDir,
				Overwrite:     overwrite || cfg.GapFill.OverwriteExisting,
				RegionalCodes: loadRegionalCodes(cfg.ReferencePath()),
			}

			release, err := stagefile.Lock(outDir)
			if err != nil {
				return err
			}
			defer release()

			manifest, err := gapfill.Fill(opts, gapfill.SlicerFunc(sheet.Slice), logger)
			if err != nil {
				return err
			}

			if err := stagefile.WriteJSON(filepath.Join(outDir, cfg.Stages.ManifestFile), manifest); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "gapfill: %d produced, %d covered, %d existing\n",
				len(manifest.Produced), len(manifest.Covered), len(manifest.Existing))
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Re-slice variants whose assets already exist")
	return cmd
}

// loadRegionalCodes derives the per-creature regional side table from the
// stage-2 reference file when one exists. The archive can be filled without
// it; generic regional keys then take the capitalized fallback name.
func loadRegionalCodes(referencePath string) map[string]map[string]bool {
	var reference map[string][]roster.ReferenceEntry
	if err := stagefile.ReadJSON(referencePath, &reference); err != nil {
		return nil
	}

	codes := make(map[string]map[string]bool, len(reference))
	for id, entries := range reference {
		codes[id] = roster.RegionalCodes(entries)
	}
	return codes
}
