package validation

import (
	"strconv"
	"strings"
	"time"

	"tasklist/internal/codec"
)

const (
	FieldTaskData   = "task_data"
	FieldDueDate    = "due_date"
	FieldTaskNumber = "task_number"

	dateOnlyLayout = "2006-01-02"
	dueDateFormats = "YYYY-MM-DD HH:MM:SS ±HHMM or YYYY-MM-DD"
)

// TaskValidator validates user input for task commands.
type TaskValidator struct {
	validator *Validator
	location  *time.Location
}

// NewTaskValidator creates a task validator. Date-only due dates are read
// as midnight in time.Local.
func NewTaskValidator(maxDataLength int) *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(maxDataLength),
		location:  time.Local,
	}
}

// WithLocation returns a copy that reads date-only due dates in loc.
func (tv *TaskValidator) WithLocation(loc *time.Location) *TaskValidator {
	clone := *tv
	clone.location = loc
	return &clone
}

// ValidateTaskData checks a new task description.
func (tv *TaskValidator) ValidateTaskData(data string) error {
	validationError := NewValidationError()
	trimmed := strings.TrimSpace(data)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(FieldTaskData)
		return validationError
	}

	if tv.validator.HasLineBreak(trimmed) {
		validationError.AddInvalidCharacterError(FieldTaskData, trimmed, "must not contain line breaks")
	}

	if !tv.validator.IsWithinMaxLength(trimmed) {
		validationError.AddInvalidLengthError(FieldTaskData, trimmed, tv.validator.MaxDataLength())
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTaskData returns the trimmed description if it is valid.
func (tv *TaskValidator) GetValidTaskData(data string) (string, error) {
	if err := tv.ValidateTaskData(data); err != nil {
		return "", err
	}
	return strings.TrimSpace(data), nil
}

// ParseDueDate accepts the record date pattern, its colon-offset form, or a
// bare date. Empty input means no due date. The result is in UTC.
func (tv *TaskValidator) ParseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t := codec.ParseDate(value); t != nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(dateOnlyLayout, value, tv.location); err == nil {
		utc := t.UTC()
		return &utc, nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidFormatError(FieldDueDate, value, dueDateFormats)
	return nil, validationError
}

// ParseTaskNumber converts a 1-based task number typed by the user into a
// 0-based list index. Zero, negative and non-numeric input are rejected.
func (tv *TaskValidator) ParseTaskNumber(arg string) (int, error) {
	n, ok := tv.validator.ParsePositiveInt(arg)
	if ok {
		return n - 1, nil
	}

	validationError := NewValidationError()
	if _, err := strconv.Atoi(strings.TrimSpace(arg)); err != nil {
		validationError.AddInvalidFormatError(FieldTaskNumber, arg, "a task number")
	} else {
		validationError.AddInvalidRangeError(FieldTaskNumber, arg, "task numbers start at 1")
	}
	return 0, validationError
}

// ParseTaskNumber is TaskValidator.ParseTaskNumber with default limits.
func ParseTaskNumber(arg string) (int, error) {
	return NewTaskValidator(0).ParseTaskNumber(arg)
}
