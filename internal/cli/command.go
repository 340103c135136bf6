package cli

import (
	"strings"
	"unicode"
)

// Command is one of the fixed set of interactive commands.
type Command int

const (
	CommandUnknown Command = iota
	CommandHelp
	CommandList
	CommandAdd
	CommandRemove
	CommandComplete
	CommandExit
)

var commandNames = map[Command]string{
	CommandHelp:     "help",
	CommandList:     "list",
	CommandAdd:      "add",
	CommandRemove:   "remove",
	CommandComplete: "complete",
	CommandExit:     "exit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand maps a keyword to a Command, ignoring case. Anything
// unrecognised is CommandUnknown.
func ParseCommand(keyword string) Command {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	for cmd, name := range commandNames {
		if name == keyword {
			return cmd
		}
	}
	return CommandUnknown
}

// ClientCommands returns the commands a user can type, in help order.
func ClientCommands() []Command {
	return []Command{
		CommandHelp,
		CommandList,
		CommandAdd,
		CommandRemove,
		CommandComplete,
		CommandExit,
	}
}

// ParseInput splits a line into its command keyword and comma-separated
// arguments. The keyword ends at the first whitespace. Each argument is
// trimmed; a line with no argument text yields a single empty argument.
func ParseInput(line string) (Command, []string) {
	line = strings.TrimSpace(line)

	keyword, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		keyword, rest = line[:i], line[i+1:]
	}

	if strings.TrimSpace(rest) == "" {
		return ParseCommand(keyword), []string{""}
	}

	parts := strings.Split(rest, ",")
	args := make([]string, len(parts))
	for i, part := range parts {
		args[i] = strings.TrimSpace(part)
	}
	return ParseCommand(keyword), args
}

// firstArg returns args[0], or "" when args is empty.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
