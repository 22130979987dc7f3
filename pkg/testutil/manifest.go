package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteManifest writes package.json into a fresh temp directory.
//
// Parameters:
//   - t: Testing instance for helper marking and temp dir cleanup
//   - content: The manifest JSON
//
// Returns:
//   - string: The directory containing package.json
func WriteManifest(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}
	return dir
}

// ReadManifest returns the current content of package.json in dir.
func ReadManifest(t *testing.T, dir string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}
	return string(content)
}
