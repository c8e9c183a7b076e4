package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"spritedex/internal/logging"
	"spritedex/internal/roster"
	"spritedex/internal/stagefile"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [roster-file] [out-file]",
		Short: "Import the external roster description into a reference table",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rosterPath := argOr(args, 0, cfg.Paths.RosterPath)
			outPath := argOr(args, 1, cfg.ReferencePath())

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			entries, err := roster.Load(rosterPath)
			if err != nil {
				return err
			}
			logger.Info("imported roster", "path", rosterPath, "creatures", len(entries))

			release, err := stagefile.Lock(filepath.Dir(outPath))
			if err != nil {
				return err
			}
			defer release()

			if err := stagefile.WriteJSON(outPath, entries); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "import: %d creatures referenced\n", len(entries))
			return nil
		},
	}
	return cmd
}
