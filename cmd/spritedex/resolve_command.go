package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"spritedex/internal/config"
	"spritedex/internal/extractor"
	"spritedex/internal/logging"
	"spritedex/internal/report"
	"spritedex/internal/resolver"
	"spritedex/internal/roster"
	"spritedex/internal/stagefile"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "resolve [forms-file] [reference-file] [out-file]",
		Short: "Assign canonical display names to every sprite form",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			formsPath := argOr(args, 0, cfg.FormsPath())
			referencePath := argOr(args, 1, cfg.ReferencePath())
			outPath := argOr(args, 2, cfg.ResolvedPath())
			return runResolve(cmd, cfg, formsPath, referencePath, outPath, jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run report as JSON")
	return cmd
}

func runResolve(cmd *cobra.Command, cfg *config.Config, formsPath, referencePath, outPath string, jsonOut bool) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	var groups map[string][]extractor.FormRecord
	if err := stagefile.ReadJSON(formsPath, &groups); err != nil {
		return err
	}

	var reference map[string][]roster.ReferenceEntry
	if err := stagefile.ReadJSON(referencePath, &reference); err != nil {
		return err
	}

	rep := report.New("resolve")
	resolved := make(map[string][]resolver.ResolvedForm, len(groups))

	for _, id := range sortedIDs(groups) {
		records := groups[id]
		name := roster.CanonicalName(reference, id)
		codes := roster.RegionalCodes(reference[id])

		forms, diag := resolver.Resolve(id, records, name, codes)
		resolved[id] = forms

		keys := make([]string, 0, len(records))
		for _, rec := range records {
			keys = append(keys, rec.Key)
		}
		rep.AddGroupDiagnostics(id, keys, diag)

		rep.GroupCount++
		rep.FormCount += len(forms)
	}

	logger.Info("resolved names", "groups", rep.GroupCount, "forms", rep.FormCount)

	release, err := stagefile.Lock(filepath.Dir(outPath))
	if err != nil {
		return err
	}
	defer release()

	if err := stagefile.WriteJSON(outPath, resolved); err != nil {
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
