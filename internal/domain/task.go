package domain

import "time"

// Task is one to-do entry.
// DueDate and CompletedDate are nil when absent.
type Task struct {
	Completed     bool
	Data          string
	DueDate       *time.Time
	CompletedDate *time.Time
}

// NewTask creates an open Task with the given description.
func NewTask(data string) Task {
	return Task{
		Data: data,
	}
}

// IsValid checks if the task has a description.
func (t Task) IsValid() bool {
	return t.Data != ""
}

// IsOverdue reports whether an open task is past its due date.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now)
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Data
}
