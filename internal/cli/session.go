package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/repository"
	"tasklist/internal/validation"
)

// Prompt is printed before each line is read.
const Prompt = "> "

// SessionOptions configures a Session. Zero values get defaults.
type SessionOptions struct {
	Path       string
	Repository repository.Repository
	Out        io.Writer
	Logger     *log.Logger
	Now        func() time.Time
	Renderer   *Renderer
	Validator  *validation.TaskValidator
}

// Session owns one task list and the file it is saved to. Every mutating
// command saves before returning.
type Session struct {
	path         string
	repo         repository.Repository
	list         *domain.TaskList
	out          io.Writer
	logger       *log.Logger
	now          func() time.Time
	renderer     *Renderer
	validator    *validation.TaskValidator
	registry     *CommandRegistry
	errorHandler *ErrorHandler
}

// NewSession creates a session with an empty task list. Call Load to read
// the saved list.
func NewSession(opts SessionOptions) *Session {
	s := &Session{
		path:         opts.Path,
		repo:         opts.Repository,
		list:         domain.NewTaskList(),
		out:          opts.Out,
		logger:       opts.Logger,
		now:          opts.Now,
		renderer:     opts.Renderer,
		validator:    opts.Validator,
		errorHandler: NewErrorHandler(),
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.renderer == nil {
		s.renderer = NewRenderer()
	}
	if s.validator == nil {
		s.validator = validation.NewTaskValidator(0)
	}
	s.registry = NewCommandRegistry(s)
	return s
}

// Load replaces the in-memory list with the saved one.
func (s *Session) Load(ctx context.Context) {
	s.list = s.repo.Load(ctx, s.path)
}

// TaskList returns the session's list.
func (s *Session) TaskList() *domain.TaskList {
	return s.list
}

// Path returns the file the session saves to.
func (s *Session) Path() string {
	return s.path
}

// Execute runs one command. The returned error is a *CommandError whose
// message is fit to show the user.
func (s *Session) Execute(ctx context.Context, cmd Command, args []string) error {
	err := s.registry.Execute(ctx, cmd, args)
	if err == nil {
		return nil
	}

	if errors.ShouldLogError(err) {
		s.logger.Error("command failed", "command", cmd, "code", s.errorHandler.GetErrorCode(err), "err", err)
	} else {
		s.logger.Debug("command rejected",
			"command", cmd,
			"code", s.errorHandler.GetErrorCode(err),
			"validation", s.errorHandler.IsValidationError(err),
			"err", err)
	}
	return s.errorHandler.Handle(cmd, err)
}

// Dispatch parses and executes one input line. It reports whether the
// line asked to exit.
func (s *Session) Dispatch(ctx context.Context, line string) (bool, error) {
	cmd, args := ParseInput(line)
	logging.Debugf("dispatch %q -> %s %q", line, cmd, args)
	if cmd == CommandExit {
		return true, nil
	}
	return false, s.Execute(ctx, cmd, args)
}

// Run shows the welcome banner and the list, then reads commands from in
// until exit, EOF or ctx is done. Command errors are printed and the loop
// continues.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(s.out, "%s\n\n%s\n\n", welcomeBanner, generalHelp())
	s.printList()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, Prompt)
		if !scanner.Scan() {
			logging.Debugln("input closed")
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		exit, err := s.Dispatch(ctx, line)
		if err != nil {
			fmt.Fprintln(s.out, err)
		}
		if exit {
			return nil
		}
	}
}

// save writes the list through to the repository. A failure is reported
// but the in-memory list stays as it is.
func (s *Session) save(ctx context.Context) {
	if err := s.repo.Save(ctx, s.path, s.list); err != nil {
		s.logger.Warn("could not save task list", "path", s.path, "err", err)
		fmt.Fprintf(s.out, "Warning: changes were not saved: %s\n", s.errorHandler.Detail(err))
	}
}

func (s *Session) printList() {
	s.renderer.RenderList(s.out, s.list, s.now())
}
