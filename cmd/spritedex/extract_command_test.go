package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"spritedex/internal/extractor"
	"spritedex/internal/stagefile"
	"spritedex/internal/testsupport"
)

func TestRunExtractWritesGroupsAndReport(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.TouchAll(t, cfg.Paths.SpritesDir,
		"0001.png", "0001(fem).png", "0006(mx).png", "garbage.png")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runExtract(cmd, cfg, cfg.Paths.SpritesDir, cfg.FormsPath(), false); err != nil {
		t.Fatalf("runExtract failed: %v", err)
	}

	var groups map[string][]extractor.FormRecord
	if err := stagefile.ReadJSON(cfg.FormsPath(), &groups); err != nil {
		t.Fatalf("read stage-1 output: %v", err)
	}
	if len(groups["1"]) != 2 || len(groups["6"]) != 1 {
		t.Fatalf("unexpected groups: %v", groups)
	}

	out := buf.String()
	if !strings.Contains(out, "garbage.png") {
		t.Fatalf("rejected file missing from summary: %q", out)
	}
}

func TestRunExtractMissingDirIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runExtract(cmd, cfg, cfg.Paths.SpritesDir+"-absent", cfg.FormsPath(), false)
	if err == nil {
		t.Fatal("expected an error for a missing sprites directory")
	}
}
