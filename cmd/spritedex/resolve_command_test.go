package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"spritedex/internal/config"
	"spritedex/internal/extractor"
	"spritedex/internal/resolver"
	"spritedex/internal/roster"
	"spritedex/internal/stagefile"
	"spritedex/internal/testsupport"
)

func writeStageInputs(t *testing.T, cfg *config.Config) {
	t.Helper()

	groups := map[string][]extractor.FormRecord{
		"37": {
			{Filename: "0037(r).png", Key: "(r)", CreatureID: "37"},
			{Filename: "0037.png", Key: "base", CreatureID: "37"},
		},
		"9000": {
			{Filename: "9000(beta).png", Key: "(beta)", CreatureID: "9000"},
		},
	}
	if err := stagefile.WriteJSON(cfg.FormsPath(), groups); err != nil {
		t.Fatalf("write stage-1 input: %v", err)
	}

	order := 1
	reference := map[string][]roster.ReferenceEntry{
		"37": {
			{StableID: "VULPIX", Key: "vulpix", DisplayOrder: &order, CanonicalName: "Vulpix"},
			{StableID: "VULPIX_ALOLAN", Key: "vulpix-alolan", CanonicalName: "Alolan Vulpix"},
		},
	}
	if err := stagefile.WriteJSON(cfg.ReferencePath(), reference); err != nil {
		t.Fatalf("write stage-2 input: %v", err)
	}
}

func TestRunResolveEndToEnd(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeStageInputs(t, cfg)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runResolve(cmd, cfg, cfg.FormsPath(), cfg.ReferencePath(), cfg.ResolvedPath(), false); err != nil {
		t.Fatalf("runResolve failed: %v", err)
	}

	var resolved map[string][]resolver.ResolvedForm
	if err := stagefile.ReadJSON(cfg.ResolvedPath(), &resolved); err != nil {
		t.Fatalf("read stage-3 output: %v", err)
	}

	// The null-order roster entry supplies the canonical name; the generic
	// regional key resolves through the side table.
	forms := resolved["37"]
	if len(forms) != 2 {
		t.Fatalf("unexpected group 37: %+v", forms)
	}
	if forms[0].Name != "Alolan Vulpix" || !forms[0].Canonical {
		t.Fatalf("canonical = %+v", forms[0])
	}
	if forms[1].Name != "Alolan Vulpix-Alola" {
		t.Fatalf("regional form = %+v", forms[1])
	}

	// Group 9000 has no canonical; the run continues and reports it.
	if len(resolved["9000"]) != 1 || resolved["9000"][0].Canonical {
		t.Fatalf("unexpected group 9000: %+v", resolved["9000"])
	}
	if !strings.Contains(buf.String(), "9000") {
		t.Fatalf("missing-canonical warning not in summary: %q", buf.String())
	}
}

func TestRunResolveIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeStageInputs(t, cfg)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if err := runResolve(cmd, cfg, cfg.FormsPath(), cfg.ReferencePath(), cfg.ResolvedPath(), false); err != nil {
		t.Fatalf("first runResolve failed: %v", err)
	}
	first, err := os.ReadFile(cfg.ResolvedPath())
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}

	if err := runResolve(cmd, cfg, cfg.FormsPath(), cfg.ReferencePath(), cfg.ResolvedPath(), false); err != nil {
		t.Fatalf("second runResolve failed: %v", err)
	}
	second, err := os.ReadFile(cfg.ResolvedPath())
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("stage-3 output must be byte-identical across re-runs")
	}
}

func TestRunResolveMissingInputIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runResolve(cmd, cfg, cfg.FormsPath(), cfg.ReferencePath(), cfg.ResolvedPath(), false)
	if err == nil {
		t.Fatal("expected an error when stage inputs are missing")
	}
	if _, statErr := os.Stat(cfg.ResolvedPath()); statErr == nil {
		t.Fatal("no partial output may be written on failure")
	}
}
