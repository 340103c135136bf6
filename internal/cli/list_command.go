package cli

import (
	"context"
)

// ListCommand handles the list command
type ListCommand struct {
	session *Session
}

// NewListCommand creates a new list command handler
func NewListCommand(session *Session) *ListCommand {
	return &ListCommand{session: session}
}

// Execute prints every task with its 1-based number. Arguments are ignored.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	c.session.printList()
	return nil
}
