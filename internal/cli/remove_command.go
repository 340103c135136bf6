package cli

import (
	"context"

	"tasklist/internal/errors"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	session *Session
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(session *Session) *RemoveCommand {
	return &RemoveCommand{session: session}
}

// Execute removes the task numbered args[0]; later tasks move up one.
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	s := c.session

	index, err := s.validator.ParseTaskNumber(firstArg(args))
	if err != nil {
		return errors.NewValidationError("invalid task number", err)
	}

	if err := s.list.Remove(index); err != nil {
		return err
	}
	s.logger.Debug("removed task", "number", index+1)

	s.save(ctx)
	s.printList()
	return nil
}
