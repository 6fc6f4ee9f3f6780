package testutil

import (
	"os"
	"strings"
	"testing"

	tinkerr "github.com/tink-dev/tink/internal/errors"
)

// AssertErrorCode asserts that err is a TinkError carrying code.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if !tinkerr.HasCode(err, code) {
		t.Errorf("expected error code %s, got %v", code, err)
	}
}

// AssertJSONEqual compares two JSON documents ignoring whitespace.
// Key order is significant.
func AssertJSONEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if want, got := Compact(expected), Compact(actual); want != got {
		t.Errorf("JSON mismatch\nwant: %s\ngot:  %s", want, got)
	}
}

// AssertFileJSON asserts that the file at path holds the expected JSON.
func AssertFileJSON(t *testing.T, path, expected string) {
	t.Helper()
	AssertJSONEqual(t, expected, string(ReadFile(t, path)))
}

// AssertFileUnchanged asserts that path still holds exactly content.
func AssertFileUnchanged(t *testing.T, path, content string) {
	t.Helper()
	if got := string(ReadFile(t, path)); got != content {
		t.Errorf("%s was rewritten\nbefore: %s\nafter:  %s", path, content, got)
	}
}

// AssertNotExists asserts that nothing exists at path.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist (stat err: %v)", path, err)
	}
}

// AssertContainsAll asserts that s contains every substring in want.
func AssertContainsAll(t *testing.T, s string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(s, w) {
			t.Errorf("output missing %q:\n%s", w, s)
		}
	}
}
