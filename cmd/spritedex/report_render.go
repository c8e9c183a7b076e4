package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spritedex/internal/report"
)

// printReport renders the end-of-run warning summary. All warnings are
// printed here, once, so a human scans a single block instead of log
// interleave.
func printReport(cmd *cobra.Command, rep *report.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s: %d groups, %d forms\n", rep.Stage, rep.GroupCount, rep.FormCount)

	if rep.Clean() {
		fmt.Fprintln(out, "No warnings.")
		return
	}

	if len(rep.RejectedFiles) > 0 {
		rows := make([][]string, 0, len(rep.RejectedFiles))
		for _, rej := range rep.RejectedFiles {
			rows = append(rows, []string{rej.Filename, rej.Reason})
		}
		fmt.Fprintf(out, "\nRejected files (%d):\n", len(rows))
		fmt.Fprintln(out, renderTable([]string{"File", "Reason"}, rows, nil))
	}

	if len(rep.MissingCanonical) > 0 {
		rows := make([][]string, 0, len(rep.MissingCanonical))
		for _, mc := range rep.MissingCanonical {
			rows = append(rows, []string{mc.CreatureID, strings.Join(mc.Keys, ", ")})
		}
		fmt.Fprintf(out, "\nGroups without a canonical form (%d):\n", len(rows))
		fmt.Fprintln(out, renderTable([]string{"Creature", "Keys"}, rows, nil))
	}

	if len(rep.AmbiguousRegional) > 0 {
		rows := make([][]string, 0, len(rep.AmbiguousRegional))
		for _, ar := range rep.AmbiguousRegional {
			rows = append(rows, []string{ar.CreatureID, ar.Key})
		}
		fmt.Fprintf(out, "\nUnresolved regional prefixes (%d):\n", len(rows))
		fmt.Fprintln(out, renderTable([]string{"Creature", "Key"}, rows, nil))
	}

	if len(rep.NameCollisions) > 0 {
		rows := make([][]string, 0, len(rep.NameCollisions))
		for _, nc := range rep.NameCollisions {
			rows = append(rows, []string{nc.CreatureID, nc.Name, strings.Join(nc.Keys, ", ")})
		}
		fmt.Fprintf(out, "\nName collisions (%d):\n", len(rows))
		fmt.Fprintln(out, renderTable([]string{"Creature", "Name", "Keys"}, rows, nil))
	}
}
