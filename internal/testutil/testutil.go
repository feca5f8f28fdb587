// Package testutil provides shared fixture helpers for tests.
//
// Typical usage:
//
//	func TestEncode(t *testing.T) {
//	    vocabPath := testutil.WriteFile(t, "vocab.txt", "a b c\n")
//	    ...
//	}
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside a fresh temporary directory and
// returns the file path. The directory is removed when the test ends.
func WriteFile(tb testing.TB, name, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", name, err)
	}

	return path
}

// TempPath returns a path for name inside a fresh temporary directory
// without creating the file.
func TempPath(tb testing.TB, name string) string {
	tb.Helper()

	return filepath.Join(tb.TempDir(), name)
}

// Chdir switches the working directory to dir for the rest of the test.
func Chdir(tb testing.TB, dir string) {
	tb.Helper()

	orig, err := os.Getwd()
	if err != nil {
		tb.Fatalf("getwd: %v", err)
	}

	if err := os.Chdir(dir); err != nil {
		tb.Fatalf("chdir %s: %v", dir, err)
	}

	tb.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			tb.Errorf("restore working directory: %v", err)
		}
	})
}
