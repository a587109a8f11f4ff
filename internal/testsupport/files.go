package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteAnalysis writes an analysis document at root/rel, joining lines with
// newlines and creating parent directories as needed.
func WriteAnalysis(t testing.TB, root, rel string, lines ...string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	WriteBytes(t, path, []byte(strings.Join(lines, "\n")+"\n"))
	return path
}

// WriteBytes writes raw content to path, creating parent directories.
func WriteBytes(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path as a string.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
