package cli

import (
	"context"

	"tasklist/internal/errors"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	session *Session
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(session *Session) *CompleteCommand {
	return &CompleteCommand{session: session}
}

// Execute toggles the task numbered args[0]. A task that becomes completed
// is stamped with the current time; a reopened task loses its stamp.
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	s := c.session

	index, err := s.validator.ParseTaskNumber(firstArg(args))
	if err != nil {
		return errors.NewValidationError("invalid task number", err)
	}

	if err := s.list.ToggleComplete(index); err != nil {
		return err
	}

	task, err := s.list.Get(index)
	if err != nil {
		return err
	}
	if task.Completed {
		now := s.now().UTC()
		err = s.list.SetCompletedDate(index, &now)
	} else {
		err = s.list.SetCompletedDate(index, nil)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("toggled task", "number", index+1, "completed", task.Completed)

	s.save(ctx)
	s.printList()
	return nil
}
