// Package file stores a task list as a single text file.
package file

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"tasklist/internal/codec"
	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/repository"
)

// Options configures a file Repository.
type Options struct {
	// DataDir is the directory existing files must resolve into before
	// they are overwritten.
	DataDir         string
	DirPermissions  os.FileMode
	FilePermissions os.FileMode
	// Codec overrides the extension-based codec choice.
	Codec codec.Codec
}

// Repository implements repository.Repository on the local filesystem.
type Repository struct {
	opts   Options
	logger *log.Logger
}

var _ repository.Repository = (*Repository)(nil)

// New creates a file repository.
func New(opts Options, logger *log.Logger) *Repository {
	if opts.DirPermissions == 0 {
		opts.DirPermissions = 0755
	}
	if opts.FilePermissions == 0 {
		opts.FilePermissions = 0644
	}
	return &Repository{opts: opts, logger: logger}
}

// Load reads and decodes the file at path. Any failure yields an empty list.
func (r *Repository) Load(ctx context.Context, path string) *domain.TaskList {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Debug("starting with an empty task list", "path", path, "err", err)
		return domain.NewTaskList()
	}

	list := r.codecFor(path).Decode(data)
	r.logger.Debug("loaded task list", "path", path, "tasks", list.Len())
	return list
}

// Save encodes the list and overwrites path, creating parent directories.
// An existing file is only overwritten when it resolves inside DataDir.
func (r *Repository) Save(ctx context.Context, path string, list *domain.TaskList) error {
	if path == "" {
		return errors.NewInvalidInputError("path", path, "path is empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, r.opts.DirPermissions); err != nil {
		return wrapFSError("create directory", dir, err)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return errors.NewIOError("save", path, stderrors.New("path is a directory"))
		}
		if err := repository.EnsureWithinDir(r.opts.DataDir, path); err != nil {
			return err
		}
	case !stderrors.Is(err, fs.ErrNotExist):
		return wrapFSError("stat", path, err)
	}

	data, err := r.codecFor(path).Encode(list)
	if err != nil {
		return errors.NewIOError("encode", path, err)
	}

	if err := os.WriteFile(path, data, r.opts.FilePermissions); err != nil {
		return wrapFSError("write", path, err)
	}

	r.logger.Debug("saved task list", "path", path, "tasks", list.Len())
	return nil
}

func (r *Repository) codecFor(path string) codec.Codec {
	if r.opts.Codec != nil {
		return r.opts.Codec
	}
	return codec.ForPath(path)
}

func wrapFSError(operation, path string, err error) error {
	if stderrors.Is(err, fs.ErrPermission) {
		permErr := errors.NewPermissionError(operation, path)
		permErr.Cause = err
		return permErr
	}
	return errors.NewIOError(operation, path, err)
}
