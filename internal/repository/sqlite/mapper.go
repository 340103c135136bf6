package sqlite

import (
	"tasklist/internal/domain"
)

// TaskMapper handles conversion between domain tasks and table rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRow converts a domain Task at the given position to a row.
func (m *TaskMapper) ToRow(position int, task domain.Task) TaskRow {
	return TaskRow{
		Position:      position,
		Completed:     task.Completed,
		Data:          task.Data,
		DueDate:       task.DueDate,
		CompletedDate: task.CompletedDate,
	}
}

// FromRow converts a row to a domain Task.
func (m *TaskMapper) FromRow(row TaskRow) domain.Task {
	return domain.Task{
		Completed:     row.Completed,
		Data:          row.Data,
		DueDate:       row.DueDate,
		CompletedDate: row.CompletedDate,
	}
}

// ToRows converts a task list to rows numbered by position.
func (m *TaskMapper) ToRows(list *domain.TaskList) []TaskRow {
	tasks := list.Tasks()
	rows := make([]TaskRow, len(tasks))
	for i, task := range tasks {
		rows[i] = m.ToRow(i, task)
	}
	return rows
}

// FromRows converts rows, already in position order, to domain Tasks.
func (m *TaskMapper) FromRows(rows []*TaskRow) []domain.Task {
	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = m.FromRow(*row)
	}
	return tasks
}
