// Package testutil provides small helpers shared by tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tsubst/pkg/types"
)

// WriteFiles writes the given path-to-content map into fsys, creating
// parent directories as needed.
func WriteFiles(t *testing.T, fsys types.FS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if dir := filepath.Dir(path); dir != "." && dir != "/" {
			if err := fsys.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("MkdirAll(%s): %v", dir, err)
			}
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile(%s): %v", path, err)
		}
	}
}

// ReadFile reads a file from fsys, failing the test on error.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return string(data)
}
