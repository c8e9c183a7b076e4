package gapfill

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"spritedex/internal/extractor"
	"spritedex/internal/resolver"
)

// Slicer cuts one composite sheet into its individual assets. Satisfied by
// the sheet package; a test double stands in for it in tests.
type Slicer interface {
	Slice(srcPath, destDir, baseName string) ([]string, error)
}

// SlicerFunc adapts a plain function to the Slicer interface.
type SlicerFunc func(srcPath, destDir, baseName string) ([]string, error)

func (f SlicerFunc) Slice(srcPath, destDir, baseName string) ([]string, error) {
	return f(srcPath, destDir, baseName)
}

// Asset records one variant produced from the archive.
type Asset struct {
	CreatureID string   `json:"creature_id"`
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Sheet      string   `json:"sheet"`
	Paths      []string `json:"paths"`
}

// Manifest summarizes one gap-fill pass.
type Manifest struct {
	Produced []Asset  `json:"produced"`
	Covered  []string `json:"covered,omitempty"`
	Existing []string `json:"existing,omitempty"`
}

// Options configures one gap-fill pass.
type Options struct {
	// Resolved is the stage-3 name table.
	Resolved map[string][]resolver.ResolvedForm
	// Archive is the second sprite archive, grouped by creature id.
	Archive map[string][]extractor.FormRecord
	// ArchiveDir is the directory the archive filenames are relative to.
	ArchiveDir string
	// OutDir receives the sliced assets and the manifest.
	OutDir string
	// Overwrite re-slices variants whose output files already exist.
	Overwrite bool
	// RegionalCodes is the per-creature regional side table, used to
	// resolve generic regional keys in the archive. May be nil.
	RegionalCodes map[string]map[string]bool
}

// Fill walks the archive, predicts the name every sheet's variant would
// carry, and slices the sheets whose variant is missing from the resolved
// table. The pass is idempotent: already-produced assets are skipped unless
// Overwrite is set.
func Fill(opts Options, slicer Slicer, logger *slog.Logger) (Manifest, error) {
	var manifest Manifest

	ids := make([]string, 0, len(opts.Archive))
	for id := range opts.Archive {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		known := knownNames(opts.Resolved[id])
		base := baseName(id, opts.Resolved[id])

		for _, rec := range opts.Archive[id] {
			name := base + resolver.Suffix(id, rec.Key, opts.RegionalCodes[id])

			if known[name] {
				manifest.Covered = append(manifest.Covered, name)
				continue
			}
			if !opts.Overwrite && assetExists(opts.OutDir, name) {
				manifest.Existing = append(manifest.Existing, name)
				continue
			}

			src := filepath.Join(opts.ArchiveDir, rec.Filename)
			paths, err := slicer.Slice(src, opts.OutDir, name)
			if err != nil {
				return manifest, fmt.Errorf("slice %s: %w", rec.Filename, err)
			}

			logger.Info("filled missing variant",
				slog.String("creature_id", id),
				slog.String("key", rec.Key),
				slog.String("name", name))

			manifest.Produced = append(manifest.Produced, Asset{
				CreatureID: id,
				Key:        rec.Key,
				Name:       name,
				Sheet:      rec.Filename,
				Paths:      paths,
			})
		}
	}

	return manifest, nil
}

// knownNames indexes the assigned names of one resolved group.
func knownNames(forms []resolver.ResolvedForm) map[string]bool {
	names := make(map[string]bool, len(forms))
	for _, f := range forms {
		names[f.Name] = true
	}
	return names
}

// baseName recovers the group's base display name from its main canonical.
// Groups absent from the table, or lacking a canonical, fall back to the
// dex id.
func baseName(id string, forms []resolver.ResolvedForm) string {
	if name, ok := resolver.MainCanonicalName(forms); ok {
		return name
	}
	return "Dex-" + id
}

// assetExists reports whether the front render of name is already on disk,
// which is the idempotence marker for a previously filled variant.
func assetExists(outDir, name string) bool {
	_, err := os.Stat(filepath.Join(outDir, name+"-front.png"))
	return err == nil
}
