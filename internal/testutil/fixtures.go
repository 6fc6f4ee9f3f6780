// Package testutil provides fixtures and assertions shared by tink's tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/pretty"
)

// Project-relative locations of the editor files.
const (
	ZedFile    = ".zed/debug.json"
	VSCodeFile = ".vscode/launch.json"
	ConfigFile = ".tink/config.toml"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// ReadFile returns the contents of path, failing the test if it is unreadable.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

// WriteProjectFile writes content at rel inside dir and returns the full path.
func WriteProjectFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	WriteFile(t, path, content)
	return path
}

// Compact strips insignificant whitespace so JSON can be compared as a string.
func Compact(data string) string {
	return string(pretty.Ugly([]byte(data)))
}
