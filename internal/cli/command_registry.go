package cli

import (
	"context"

	"tasklist/internal/errors"
)

// Handler executes one command against a Session.
type Handler interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	handlers map[Command]Handler
}

// NewCommandRegistry registers the handlers for every client command.
func NewCommandRegistry(session *Session) *CommandRegistry {
	registry := &CommandRegistry{
		handlers: make(map[Command]Handler),
	}

	registry.Register(CommandHelp, NewHelpCommand(session))
	registry.Register(CommandList, NewListCommand(session))
	registry.Register(CommandAdd, NewAddCommand(session))
	registry.Register(CommandRemove, NewRemoveCommand(session))
	registry.Register(CommandComplete, NewCompleteCommand(session))

	return registry
}

// Register adds a handler to the registry
func (r *CommandRegistry) Register(cmd Command, handler Handler) {
	r.handlers[cmd] = handler
}

// Execute runs the handler for cmd. Exit has no handler and does nothing.
func (r *CommandRegistry) Execute(ctx context.Context, cmd Command, args []string) error {
	if cmd == CommandExit {
		return nil
	}
	handler, exists := r.handlers[cmd]
	if !exists {
		return errors.NewInvalidInputError("command", cmd.String(), "unknown command")
	}
	return handler.Execute(ctx, args)
}
