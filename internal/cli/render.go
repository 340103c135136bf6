package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"tasklist/internal/codec"
	"tasklist/internal/domain"
)

// Renderer formats the task list for the terminal.
type Renderer struct {
	Color       bool
	RelativeDue bool
	// DisplayFormat is a time layout for due and completed dates.
	DisplayFormat string
	Location      *time.Location
	// Output overrides the lipgloss renderer detected from the writer.
	Output *lipgloss.Renderer
}

// NewRenderer returns a Renderer with colors and relative due dates on.
func NewRenderer() *Renderer {
	return &Renderer{
		Color:         true,
		RelativeDue:   true,
		DisplayFormat: codec.DateLayout,
		Location:      time.Local,
	}
}

type paint func(...string) string

type listStyles struct {
	header   paint
	done     paint
	open     paint
	doneData paint
	overdue  paint
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

// styles builds the palette for w. Without color every style is identity.
func (r *Renderer) styles(w io.Writer) listStyles {
	if !r.Color {
		return listStyles{plain, plain, plain, plain, plain}
	}
	lr := r.Output
	if lr == nil {
		lr = lipgloss.NewRenderer(w)
	}
	return listStyles{
		header:   lr.NewStyle().Foreground(lipgloss.Color("5")).Bold(true).Render,
		done:     lr.NewStyle().Foreground(lipgloss.Color("2")).Render,
		open:     lr.NewStyle().Foreground(lipgloss.Color("1")).Render,
		doneData: lr.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true).Render,
		overdue:  lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render,
	}
}

// RenderList writes a "Tasks:" header followed by one numbered line per task.
func (r *Renderer) RenderList(w io.Writer, list *domain.TaskList, now time.Time) {
	st := r.styles(w)

	fmt.Fprintln(w, st.header("Tasks:"))
	if list.Len() == 0 {
		fmt.Fprintln(w, "  No tasks yet. Try 'add <description>'.")
		return
	}
	for i, task := range list.Tasks() {
		fmt.Fprintf(w, "  %s\n", r.renderTask(i+1, task, now, st))
	}
}

// RenderTask formats a single task line without colors.
func (r *Renderer) RenderTask(number int, task domain.Task, now time.Time) string {
	return r.renderTask(number, task, now, listStyles{plain, plain, plain, plain, plain})
}

func (r *Renderer) renderTask(number int, task domain.Task, now time.Time, st listStyles) string {
	mark := st.open("[ ]")
	data := task.Data
	if task.Completed {
		mark = st.done("[√]")
		data = st.doneData(data)
	}

	line := fmt.Sprintf("%d: %s [Due: %s] [Completed: %s] %s",
		number, mark, r.formatDate(task.DueDate), r.formatDate(task.CompletedDate), data)

	if r.RelativeDue && !task.Completed && task.DueDate != nil {
		rel := humanize.RelTime(*task.DueDate, now, "ago", "from now")
		if task.IsOverdue(now) {
			line += " " + st.overdue("(overdue, due "+rel+")")
		} else {
			line += " (due " + rel + ")"
		}
	}
	return line
}

func (r *Renderer) formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	layout := r.DisplayFormat
	if layout == "" {
		layout = codec.DateLayout
	}
	return t.In(loc).Format(layout)
}
