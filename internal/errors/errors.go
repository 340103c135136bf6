package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewIndexError reports an index outside [0, length)
func NewIndexError(index int, length int) *AppError {
	return &AppError{
		Type:    ErrorTypeIndex,
		Message: fmt.Sprintf("index %d out of range for %d tasks", index, length),
		Code:    "INDEX_OUT_OF_RANGE",
		Context: map[string]interface{}{
			"index":  index,
			"length": length,
		},
	}
}

// NewAppendError reports an append that did not grow the task list
func NewAppendError(length int) *AppError {
	return &AppError{
		Type:    ErrorTypeAppend,
		Message: "append did not add a task",
		Code:    "APPEND_FAILED",
		Context: map[string]interface{}{
			"length": length,
		},
	}
}

// NewIOError creates a new file or storage error
func NewIOError(operation string, path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("%s failed: %s", operation, path),
		Code:    "IO_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
			"path":      path,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// NewParseError reports a value that could not be parsed
func NewParseError(field string, value string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("could not parse %s: %q", field, value),
		Code:    "PARSE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"field": field,
			"value": value,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeParse:
			return appErr.Message
		case ErrorTypeIndex:
			return "No task with that number."
		case ErrorTypeAppend:
			return "The task could not be added."
		case ErrorTypeIO:
			return "The task list could not be saved."
		case ErrorTypePermission:
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeIndex, ErrorTypeInvalidInput, ErrorTypeParse:
			return false // user errors
		case ErrorTypeAppend, ErrorTypeIO, ErrorTypePermission:
			return true
		default:
			return true
		}
	}
	return true
}
