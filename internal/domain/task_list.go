package domain

import (
	"time"

	"tasklist/internal/errors"
)

// TaskList is the ordered, index-addressed task collection.
// Position is display order and on-disk order; positions shift on Remove.
type TaskList struct {
	tasks []Task
}

// NewTaskList creates a TaskList holding the given tasks in order.
func NewTaskList(tasks ...Task) *TaskList {
	list := &TaskList{tasks: make([]Task, 0, len(tasks))}
	list.tasks = append(list.tasks, tasks...)
	return list
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Get returns the task at the 0-based index.
func (l *TaskList) Get(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	return l.tasks[index], nil
}

// Add appends a task and returns its 0-based index.
func (l *TaskList) Add(task Task) (int, error) {
	before := len(l.tasks)
	l.tasks = append(l.tasks, task)
	if len(l.tasks) <= before {
		return 0, errors.NewAppendError(before)
	}
	return len(l.tasks) - 1, nil
}

// Remove deletes the task at the 0-based index; later tasks shift down by one.
func (l *TaskList) Remove(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return nil
}

// ToggleComplete flips the completion flag at the 0-based index.
// It does not touch CompletedDate.
func (l *TaskList) ToggleComplete(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.tasks[index].Completed = !l.tasks[index].Completed
	return nil
}

// SetCompletedDate replaces the completion timestamp at the 0-based index.
func (l *TaskList) SetCompletedDate(index int, completedAt *time.Time) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.tasks[index].CompletedDate = completedAt
	return nil
}

func (l *TaskList) checkIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return errors.NewIndexError(index, len(l.tasks))
	}
	return nil
}
