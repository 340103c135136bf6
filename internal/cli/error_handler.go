package cli

import (
	"fmt"
	"strings"

	"tasklist/internal/errors"
	"tasklist/internal/validation"
)

// UnknownCommandMessage is shown for any keyword that is not a command.
const UnknownCommandMessage = "Invalid command. Try 'help' for a list of commands."

// CommandError carries the message shown to the user and the underlying
// cause, so callers can still inspect the error type.
type CommandError struct {
	Command Command
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle wraps err in a CommandError with the message for cmd.
func (eh *ErrorHandler) Handle(cmd Command, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{
		Command: cmd,
		Message: eh.Message(cmd, err),
		Err:     err,
	}
}

// Message returns the user-facing text for a failed command.
func (eh *ErrorHandler) Message(cmd Command, err error) string {
	switch cmd {
	case CommandUnknown:
		return UnknownCommandMessage
	case CommandHelp, CommandAdd, CommandRemove, CommandComplete:
		return fmt.Sprintf("Invalid %s command please try again.", strings.ToUpper(cmd.String()))
	}
	return eh.Detail(err)
}

// Detail describes err without the command context.
func (eh *ErrorHandler) Detail(err error) string {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.Error()
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if cause, ok := appErr.Cause.(*validation.ValidationError); ok {
			return cause.Error()
		}
		return errors.GetUserMessage(err)
	}
	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
