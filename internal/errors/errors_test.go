package errors

import (
	"errors"
	"testing"
)

func TestNewIndexError(t *testing.T) {
	err := NewIndexError(5, 2)

	if err.Type != ErrorTypeIndex {
		t.Errorf("NewIndexError type = %v, want %v", err.Type, ErrorTypeIndex)
	}
	if err.Message != "index 5 out of range for 2 tasks" {
		t.Errorf("NewIndexError message = %v", err.Message)
	}
	if err.Code != "INDEX_OUT_OF_RANGE" {
		t.Errorf("NewIndexError code = %v, want %v", err.Code, "INDEX_OUT_OF_RANGE")
	}

	index, ok := err.GetContext("index")
	if !ok || index != 5 {
		t.Errorf("NewIndexError should set index context")
	}
	length, ok := err.GetContext("length")
	if !ok || length != 2 {
		t.Errorf("NewIndexError should set length context")
	}
}

func TestNewAppendError(t *testing.T) {
	err := NewAppendError(3)

	if err.Type != ErrorTypeAppend {
		t.Errorf("NewAppendError type = %v, want %v", err.Type, ErrorTypeAppend)
	}
	if err.Code != "APPEND_FAILED" {
		t.Errorf("NewAppendError code = %v, want %v", err.Code, "APPEND_FAILED")
	}
}

func TestNewIOError(t *testing.T) {
	cause := errors.New("read-only file system")
	err := NewIOError("save", "data/tasklist.md", cause)

	if err.Type != ErrorTypeIO {
		t.Errorf("NewIOError type = %v, want %v", err.Type, ErrorTypeIO)
	}
	if err.Message != "save failed: data/tasklist.md" {
		t.Errorf("NewIOError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewIOError cause = %v, want %v", err.Cause, cause)
	}

	path, ok := err.GetContext("path")
	if !ok || path != "data/tasklist.md" {
		t.Errorf("NewIOError should set path context")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("command", "frobnicate", "unknown command")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for command: unknown command" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "frobnicate" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("save", "/etc/passwd")

	if err.Type != ErrorTypePermission {
		t.Errorf("NewPermissionError type = %v, want %v", err.Type, ErrorTypePermission)
	}
	if err.Message != "permission denied for save on /etc/passwd" {
		t.Errorf("NewPermissionError message = %v", err.Message)
	}
}

func TestNewParseError(t *testing.T) {
	cause := errors.New("bad month")
	err := NewParseError("due date", "2024-13-01", cause)

	if err.Type != ErrorTypeParse {
		t.Errorf("NewParseError type = %v, want %v", err.Type, ErrorTypeParse)
	}
	if err.Message != `could not parse due date: "2024-13-01"` {
		t.Errorf("NewParseError message = %v", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewParseError should wrap its cause")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeIO, "wrapped message")

	if err.Code != "io" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "io")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsErrorType(t *testing.T) {
	appError := NewIndexError(1, 0)
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeIndex) {
		t.Errorf("IsErrorType should return true for matching type")
	}
	if IsErrorType(appError, ErrorTypeIO) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if IsErrorType(regularError, ErrorTypeIndex) {
		t.Errorf("IsErrorType should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("task description is required", nil),
			expected: "task description is required",
		},
		{
			name:     "Index error",
			err:      NewIndexError(4, 1),
			expected: "No task with that number.",
		},
		{
			name:     "Append error",
			err:      NewAppendError(0),
			expected: "The task could not be added.",
		},
		{
			name:     "IO error",
			err:      NewIOError("save", "x", errors.New("boom")),
			expected: "The task list could not be saved.",
		},
		{
			name:     "Permission error",
			err:      NewPermissionError("save", "x"),
			expected: "permission denied for save on x",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewAppendError(0)) != "APPEND_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("bad", nil), false},
		{"Index error", NewIndexError(1, 0), false},
		{"Parse error", NewParseError("due date", "x", nil), false},
		{"Append error", NewAppendError(0), true},
		{"IO error", NewIOError("save", "x", nil), true},
		{"Permission error", NewPermissionError("save", "x"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
