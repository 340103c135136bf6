package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected Task
	}{
		{
			name:     "creates open task with description",
			data:     "Buy milk",
			expected: Task{Data: "Buy milk"},
		},
		{
			name:     "creates task with empty description",
			data:     "",
			expected: Task{Data: ""},
		},
		{
			name:     "keeps special characters",
			data:     "Call Bob @ 5pm, bring √ list",
			expected: Task{Data: "Call Bob @ 5pm, bring √ list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewTask(tt.data)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid task with description",
			task:     Task{Data: "Valid Task"},
			expected: true,
		},
		{
			name:     "invalid task with empty description",
			task:     Task{Data: ""},
			expected: false,
		},
		{
			name:     "completed task is valid",
			task:     Task{Completed: true, Data: "Done"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"no due date", Task{Data: "a"}, false},
		{"due in the past", Task{Data: "a", DueDate: &past}, true},
		{"due in the future", Task{Data: "a", DueDate: &future}, false},
		{"completed and past due", Task{Data: "a", Completed: true, DueDate: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsOverdue(now))
		})
	}
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "My Task", Task{Data: "My Task"}.String())
	assert.Equal(t, "", Task{}.String())
}
