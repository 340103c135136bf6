package validation

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "task_data", Message: "task_data is required"}}, "invalid task_data: task_data is required"},
		{"Multiple errors", []FieldError{
			{Field: "task_data", Message: "must not contain line breaks"},
			{Field: "due_date", Message: "expected YYYY-MM-DD"},
		}, "2 validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if !strings.HasPrefix(result, tt.expected) {
				t.Errorf("ValidationError.Error() = %q, expected prefix %q", result, tt.expected)
			}
		})
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Fatal("new ValidationError should be empty")
	}
	if ve.FirstType() != "" {
		t.Errorf("FirstType() on empty error = %q, expected empty", ve.FirstType())
	}

	ve.AddRequiredError(FieldTaskData)
	ve.AddInvalidLengthError(FieldTaskData, "xxxx", 3)
	ve.AddInvalidFormatError(FieldDueDate, "tomorrow", dueDateFormats)
	ve.AddInvalidRangeError(FieldTaskNumber, "0", "task numbers start at 1")
	ve.AddInvalidCharacterError(FieldTaskData, "a\nb", "must not contain line breaks")

	if len(ve.Errors) != 5 {
		t.Fatalf("expected 5 errors, got %d", len(ve.Errors))
	}
	if ve.FirstType() != ErrorTypeRequired {
		t.Errorf("FirstType() = %v, expected %v", ve.FirstType(), ErrorTypeRequired)
	}
	if got := len(ve.GetFieldErrors(FieldTaskData)); got != 3 {
		t.Errorf("GetFieldErrors(task_data) returned %d errors, expected 3", got)
	}
	if got := ve.Errors[1].Message; got != "must be at most 3 characters long" {
		t.Errorf("unexpected length message %q", got)
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewValidationError()) {
		t.Error("IsValidationError should be true for *ValidationError")
	}
	if IsValidationError(&FieldError{}) {
		t.Error("IsValidationError should be false for *FieldError")
	}
}
