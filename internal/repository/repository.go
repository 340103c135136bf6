// Package repository defines where a task list is loaded from and saved to.
package repository

import (
	"context"
	"path/filepath"
	"strings"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// Repository persists a whole task list at a path.
type Repository interface {
	// Load never fails; a missing or unreadable source yields an empty list.
	Load(ctx context.Context, path string) *domain.TaskList

	// Save overwrites the stored list at path.
	Save(ctx context.Context, path string, list *domain.TaskList) error
}

// EnsureWithinDir rejects a path whose resolved location is outside dataDir.
// Both sides are made absolute and symlinks are resolved where they exist.
func EnsureWithinDir(dataDir, path string) error {
	base, err := resolve(dataDir)
	if err != nil {
		return errors.NewIOError("resolve data directory", dataDir, err)
	}
	target, err := resolve(path)
	if err != nil {
		return errors.NewIOError("resolve path", path, err)
	}

	rel, err := filepath.Rel(base, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return errors.NewPermissionError("save", path).
			WithContext("data_dir", base)
	}
	return nil
}

func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	// A file that does not exist yet resolves through its parent.
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs)), nil
	}
	return abs, nil
}
