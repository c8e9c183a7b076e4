package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with contents under dir, creating parents as
// needed, and returns its path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create parent directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TouchAll creates empty files with the given names under dir.
func TouchAll(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		WriteFile(t, dir, name, "")
	}
}
