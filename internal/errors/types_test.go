package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"Index", ErrorTypeIndex, "index"},
		{"Append", ErrorTypeAppend, "append"},
		{"IO", ErrorTypeIO, "io"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Permission", ErrorTypePermission, "permission"},
		{"Parse", ErrorTypeParse, "parse"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeIndex,
				Message: "index 3 out of range for 2 tasks",
			},
			expected: "index: index 3 out of range for 2 tasks",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeIO,
				Message: "write failed",
				Cause:   errors.New("disk full"),
			},
			expected: "io: write failed (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_UnwrapAndIs(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOError("write", "data/tasklist.md", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
	if !errors.Is(err, &AppError{Type: ErrorTypeIO, Code: "IO_ERROR"}) {
		t.Errorf("errors.Is should match an AppError with the same type and code")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeIndex, Code: "INDEX_OUT_OF_RANGE"}) {
		t.Errorf("errors.Is should not match a different AppError")
	}
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation}

	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("GetContext should report missing keys on a nil map")
	}

	err.WithContext("field", "data")
	value, ok := err.GetContext("field")
	if !ok || value != "data" {
		t.Errorf("WithContext should store the value, got %v", value)
	}
}
