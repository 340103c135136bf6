package cli

import (
	"fmt"
	"strings"

	"tasklist/internal/errors"
)

const welcomeBanner = `Welcome to TASKLIST!
====================`

var helpTopics = map[Command]string{
	CommandHelp: `The HELP command lists the commands, or explains one of them:

    help add`,
	CommandList: `The LIST command will LIST out your current tasks.`,
	CommandAdd: `The ADD command will ADD a task when used like so:

    add This is a test!

or to add with a due date:

    add Testing,2024-03-30 12:00:00 -0500

A due date without a time, like 2024-03-30, means midnight local time.`,
	CommandRemove: `The REMOVE command will REMOVE a task when used like so:

    remove 1

This removes task 1 from your tasklist.`,
	CommandComplete: `The COMPLETE command will COMPLETE a task when used like so:

    complete 1

This completes task 1 from your tasklist. Completing it again reopens it.`,
	CommandExit: `The EXIT command EXITS the task list.`,
}

// HelpText returns the general help for an empty topic, or the help for
// one command.
func HelpText(topic string) (string, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return generalHelp(), nil
	}

	text, ok := helpTopics[ParseCommand(topic)]
	if !ok {
		return "", errors.NewInvalidInputError("topic", topic, "no help for this topic")
	}
	return text, nil
}

func generalHelp() string {
	names := make([]string, 0, len(ClientCommands()))
	for _, cmd := range ClientCommands() {
		names = append(names, cmd.String())
	}
	return fmt.Sprintf(`Please use these commands to interact:

    %s

For further help type 'help command' like 'help add' no quotes.`, strings.Join(names, ", "))
}
