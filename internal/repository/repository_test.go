package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/errors"
)

func TestEnsureWithinDir(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "nested"), 0755))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"file in data dir", filepath.Join(dataDir, "tasklist.md"), false},
		{"file in nested dir", filepath.Join(dataDir, "nested", "tasklist.md"), false},
		{"traversal out of data dir", filepath.Join(dataDir, "..", "tasklist.md"), true},
		{"sibling with shared prefix", filepath.Join(root, "data-other", "tasklist.md"), true},
		{"unrelated absolute path", filepath.Join(root, "elsewhere.md"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureWithinDir(dataDir, tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission), "got %v", err)
		})
	}
}

func TestEnsureWithinDir_SymlinkEscape(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	outside := filepath.Join(root, "outside")
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.MkdirAll(outside, 0755))

	target := filepath.Join(outside, "tasklist.md")
	require.NoError(t, os.WriteFile(target, []byte("# TaskList:\r\n"), 0644))

	link := filepath.Join(dataDir, "tasklist.md")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	err := EnsureWithinDir(dataDir, link)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
}
