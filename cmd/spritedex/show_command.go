package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spritedex/internal/resolver"
	"spritedex/internal/stagefile"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <creature-id>",
		Short: "Show the resolved forms of one creature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var resolved map[string][]resolver.ResolvedForm
			if err := stagefile.ReadJSON(cfg.ResolvedPath(), &resolved); err != nil {
				return err
			}

			forms, ok := resolved[args[0]]
			if !ok {
				return fmt.Errorf("creature %s not found in %s", args[0], cfg.ResolvedPath())
			}

			if jsonOut {
				return writeJSON(cmd, forms)
			}

			rows := make([][]string, 0, len(forms))
			for _, f := range forms {
				canonical := ""
				if f.Canonical {
					canonical = "yes"
				}
				rows = append(rows, []string{f.Name, f.Key, f.Filename, canonical})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "Key", "File", "Canonical"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the group as JSON")
	return cmd
}
