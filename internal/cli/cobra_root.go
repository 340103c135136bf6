package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/validation"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	config  *config.Config
	logger  *log.Logger
	session *Session
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(in io.Reader, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		in:     in,
		out:    out,
		errOut: errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A personal command-line task list",
		Long: `tasks keeps a personal to-do list in a plain text file.

Run without arguments to start the interactive prompt, or run a single
command directly.

EXAMPLES:
  tasks                                    # Start the interactive prompt
  tasks add "Buy milk" "2024-03-30"        # Add a task due on a date
  tasks list                               # Show all tasks
  tasks complete 1                         # Toggle task 1 completed
  tasks remove 2                           # Remove task 2

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

  Config file: $TASKS_CONFIG, or tasks.toml in the working directory

  Storage:
    TASKS_DATA_DIR                         Data directory (default: data)
    TASKS_FILE                             Task list filename (default: tasklist.md)
    TASKS_BACKEND                          file or sqlite (default: file)
    TASKS_DIR_PERMISSIONS                  Octal directory mode (default: 755)
    TASKS_FILE_PERMISSIONS                 Octal file mode (default: 644)

  Display:
    TASKS_TIME_DISPLAY_FORMAT              Date layout in listings
    TASKS_DISPLAY_COLOR                    Colored output (default: true)
    TASKS_DISPLAY_RELATIVE_DUE             Show "due in 2 days" (default: true)

  Other:
    TASKS_VALIDATION_MAX_LENGTH            Max description length (default: 1024)
    TASKS_APP_TIMEOUT                      Timeout for single commands (default: 30s)
    TASKS_APP_VERBOSE                      Verbose logging (default: false)
    TASKS_DEBUG                            Debug logging when set`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.session.Run(cmd.Context(), root.in)
		},
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved by the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "TOML config file (overrides TASKS_CONFIG)")
	flags.String("data-dir", "", "Data directory (overrides TASKS_DATA_DIR)")
	flags.String("file", "", "Task list filename inside the data directory (overrides TASKS_FILE)")
	flags.String("backend", "", "Storage backend, file or sqlite (overrides TASKS_BACKEND)")
	flags.String("time-format", "", "Date layout in listings (overrides TASKS_TIME_DISPLAY_FORMAT)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Duration("app-timeout", 0, "Timeout for single commands (overrides TASKS_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TASKS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSingle(cmd.Context(), CommandList, []string{""})
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <description> [due date]",
		Short: "Add a task",
		Long: `Add a task with an optional due date.

Due dates use the form "2024-03-30 12:00:00 -0500", or just "2024-03-30"
for midnight local time.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSingle(cmd.Context(), CommandAdd, args)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <number>",
		Short: "Remove a task by its number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSingle(cmd.Context(), CommandRemove, args)
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete <number>",
		Short: "Toggle a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSingle(cmd.Context(), CommandComplete, args)
		},
	}

	helpCmd := &cobra.Command{
		Use:   "help [command]",
		Short: "Show help for the task commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runSingle(cmd.Context(), CommandHelp, append(args, ""))
		},
	}

	r.cmd.AddCommand(listCmd, addCmd, removeCmd, completeCmd)
	r.cmd.SetHelpCommand(helpCmd)
}

func (r *RootCommand) runSingle(ctx context.Context, command Command, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.getAppTimeout())
	defer cancel()

	return r.session.Execute(ctx, command, args)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// getOverridesFromFlags collects the flags the user actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("file") {
		v, _ := flags.GetString("file")
		overrides.Filename = &v
	}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = &v
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		color := !noColor
		overrides.Color = &color
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// setup resolves configuration and builds the session before any command runs
func (r *RootCommand) setup(ctx context.Context) error {
	loader := config.NewLoader()
	if path, _ := r.cmd.PersistentFlags().GetString("config"); path != "" {
		loader.WithConfigFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg
	r.logger = logging.New(r.errOut, cfg.Application.Verbose)
	logging.SetDebugOutput(r.errOut)

	repo, err := config.CreateRepository(cfg, r.logger)
	if err != nil {
		return err
	}

	location := time.Local
	r.session = NewSession(SessionOptions{
		Path:       cfg.GetTaskListPath(),
		Repository: repo,
		Out:        r.out,
		Logger:     r.logger,
		Renderer: &Renderer{
			Color:         cfg.Display.Color,
			RelativeDue:   cfg.Display.RelativeDue,
			DisplayFormat: cfg.Time.DisplayFormat,
			Location:      location,
		},
		Validator: validation.NewTaskValidator(cfg.Validation.TaskDataMaxLength).WithLocation(location),
	})
	r.session.Load(ctx)

	r.logger.Debug("session ready", "path", r.session.Path(), "backend", cfg.Storage.Backend, "tasks", r.session.TaskList().Len())
	return nil
}
