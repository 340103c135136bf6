// Package sqlite stores a task list in a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"tasklist/internal/codec"
	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/repository"
	"tasklist/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const (
	selectTasksQuery = `
		SELECT position, completed, data, due_date, completed_date
		FROM tasks
		ORDER BY position`
	deleteTasksQuery = `DELETE FROM tasks`
	insertTaskQuery  = `
		INSERT INTO tasks (position, completed, data, due_date, completed_date)
		VALUES (?, ?, ?, ?, ?)`
)

// Options configures a SQLite Repository.
type Options struct {
	DataDir        string
	DirPermissions os.FileMode
	// Now is used when reconciling completed tasks without a date.
	Now func() time.Time
}

// Repository implements repository.Repository on a SQLite database.
type Repository struct {
	opts   Options
	mapper *TaskMapper
	logger *log.Logger
}

var _ repository.Repository = (*Repository)(nil)

// New creates a SQLite repository.
func New(opts Options, logger *log.Logger) *Repository {
	if opts.DirPermissions == 0 {
		opts.DirPermissions = 0755
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Repository{opts: opts, mapper: NewTaskMapper(), logger: logger}
}

func (r *Repository) open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Load reads all rows ordered by position. Any failure yields an empty list.
func (r *Repository) Load(ctx context.Context, path string) *domain.TaskList {
	if _, err := os.Stat(path); err != nil {
		r.logger.Debug("starting with an empty task list", "path", path, "err", err)
		return domain.NewTaskList()
	}

	db, err := r.open(ctx, path)
	if err != nil {
		r.logger.Debug("could not open database", "path", path, "err", err)
		return domain.NewTaskList()
	}
	defer db.Close()

	rows, err := QueryMultiple(ctx, db, selectTasksQuery, ScanTaskRows)
	if err != nil {
		r.logger.Debug("could not read tasks", "path", path, "err", err)
		return domain.NewTaskList()
	}

	now := r.opts.Now()
	tasks := r.mapper.FromRows(rows)
	for i := range tasks {
		codec.Reconcile(&tasks[i], now)
	}

	r.logger.Debug("loaded task list", "path", path, "tasks", len(tasks))
	return domain.NewTaskList(tasks...)
}

// Save replaces every row with the list contents in a single transaction.
func (r *Repository) Save(ctx context.Context, path string, list *domain.TaskList) error {
	if path == "" {
		return errors.NewInvalidInputError("path", path, "path is empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, r.opts.DirPermissions); err != nil {
		return HandleDatabaseError("create directory", dir, err)
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
	case !os.IsNotExist(err):
		return HandleDatabaseError("stat", path, err)
	}

	db, err := r.open(ctx, path)
	if err != nil {
		return HandleDatabaseError("open database", path, err)
	}
	defer db.Close()

	rows := r.mapper.ToRows(list)
	err = WithTransaction(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteTasksQuery); err != nil {
			return err
		}
		for _, row := range rows {
			_, err := tx.ExecContext(ctx, insertTaskQuery,
				row.Position,
				row.Completed,
				row.Data,
				FormatTimePtrForDB(row.DueDate),
				FormatTimePtrForDB(row.CompletedDate),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return HandleDatabaseError("save", path, err)
	}

	r.logger.Debug("saved task list", "path", path, "tasks", len(rows))
	return nil
}
