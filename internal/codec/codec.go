// Package codec converts a task list to and from its on-disk text form.
package codec

import (
	"path/filepath"
	"strings"
	"time"

	"tasklist/internal/domain"
)

// Codec serializes a TaskList and reads it back.
// Decode never fails: unreadable content yields an empty list.
type Codec interface {
	Name() string
	Encode(list *domain.TaskList) ([]byte, error)
	Decode(data []byte) *domain.TaskList
}

// ForPath picks the codec for a file by its extension.
// .yaml and .yml get YAML; everything else gets the Markdown task format.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec()
	default:
		return NewMarkdownCodec()
	}
}

// Reconcile backfills a missing completion timestamp on a completed task.
func Reconcile(task *domain.Task, now time.Time) {
	if task.Completed && task.CompletedDate == nil {
		completedAt := now.UTC()
		task.CompletedDate = &completedAt
	}
}
