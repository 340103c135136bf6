package cli

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	session *Session
}

// NewAddCommand creates a new add command handler
func NewAddCommand(session *Session) *AddCommand {
	return &AddCommand{session: session}
}

// Execute appends a task. args[0] is the description and the optional
// args[1] is its due date.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	s := c.session

	data, err := s.validator.GetValidTaskData(firstArg(args))
	if err != nil {
		return errors.NewValidationError("invalid task description", err)
	}

	task := domain.NewTask(data)
	if len(args) > 1 {
		due, err := s.validator.ParseDueDate(args[1])
		if err != nil {
			return errors.NewValidationError("invalid due date", err)
		}
		task.DueDate = due
	}

	index, err := s.list.Add(task)
	if err != nil {
		return err
	}
	s.logger.Debug("added task", "number", index+1, "due", task.DueDate != nil)

	s.save(ctx)
	s.printList()
	return nil
}
