package cli

import (
	"context"
	"fmt"
)

// HelpCommand handles the help command
type HelpCommand struct {
	session *Session
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(session *Session) *HelpCommand {
	return &HelpCommand{session: session}
}

// Execute prints general help, or help for the topic in args[0].
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	text, err := HelpText(firstArg(args))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.session.out, text)
	return nil
}
