package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".gif":  true,
	".jpg":  true,
	".jpeg": true,
}

// listImages returns the image filenames directly under dir. Missing or
// unreadable directories are fatal for the invoking stage.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan sprite directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// sortedIDs returns map keys in ascending numeric order, so every run
// processes groups in the same order.
func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aerr := strconv.Atoi(ids[i])
		b, berr := strconv.Atoi(ids[j])
		if aerr != nil || berr != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	return ids
}

// argOr returns the positional argument at index, or fallback when absent.
func argOr(args []string, index int, fallback string) string {
	if index < len(args) && strings.TrimSpace(args[index]) != "" {
		return args[index]
	}
	return fallback
}
