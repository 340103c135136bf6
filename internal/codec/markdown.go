package codec

import (
	"regexp"
	"strings"
	"time"

	"tasklist/internal/domain"
)

const (
	// Header marks the start of the task records.
	Header = "# TaskList:"

	// DateLayout is the fixed timestamp pattern used in record lines.
	DateLayout = "2006-01-02 15:04:05 -0700"

	lineSeparator = "\r\n"
	completedMark = "√"
)

// Older files carry the offset as -07:00 and sometimes fractional seconds.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05.999999999 -07:00",
	"2006-01-02 15:04:05.999999999 -0700",
}

// recordPattern matches a record anywhere in the line, so indented or
// bulleted records still load.
var recordPattern = regexp.MustCompile(` - (\[[ √]\]) \[Due: (.*?)\] \[Completed: (.*?)\] (.*)$`)

// MarkdownCodec reads and writes the line-oriented task file:
//
//	# TaskList:
//	 - [ ] [Due: 2024-03-30 12:00:00 -0500] [Completed: ] Buy milk
//
// Field delimiters are not escaped, so descriptions containing " [Due: "
// or " [Completed: " do not survive a round trip.
type MarkdownCodec struct {
	// Location is the zone timestamps are rendered in.
	Location *time.Location
	// Now supplies the reconciliation timestamp.
	Now func() time.Time
}

// NewMarkdownCodec creates a codec rendering in the local zone.
func NewMarkdownCodec() *MarkdownCodec {
	return &MarkdownCodec{
		Location: time.Local,
		Now:      time.Now,
	}
}

// Name returns the codec name.
func (c *MarkdownCodec) Name() string {
	return "markdown"
}

// Encode renders the header and one record line per task, CRLF separated.
func (c *MarkdownCodec) Encode(list *domain.TaskList) ([]byte, error) {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString(lineSeparator)
	for _, task := range list.Tasks() {
		b.WriteString(c.EncodeTask(task))
		b.WriteString(lineSeparator)
	}
	return []byte(b.String()), nil
}

// EncodeTask renders a single record line without the separator.
func (c *MarkdownCodec) EncodeTask(task domain.Task) string {
	mark := " "
	if task.Completed {
		mark = completedMark
	}
	return " - [" + mark + "] [Due: " + c.formatDate(task.DueDate) + "] [Completed: " +
		c.formatDate(task.CompletedDate) + "] " + task.Data
}

// Decode parses every record after the header line. Lines that do not
// match the record shape are skipped.
func (c *MarkdownCodec) Decode(data []byte) *domain.TaskList {
	list := domain.NewTaskList()
	headerFound := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !headerFound {
			if strings.Contains(line, Header) {
				headerFound = true
			}
			continue
		}

		task, ok := c.DecodeTask(line)
		if !ok {
			continue
		}
		list.Add(task)
	}

	return list
}

// DecodeTask parses one record line, applying the reconciliation rule.
func (c *MarkdownCodec) DecodeTask(line string) (domain.Task, bool) {
	matches := recordPattern.FindStringSubmatch(line)
	if matches == nil {
		return domain.Task{}, false
	}

	task := domain.Task{
		Completed:     strings.Contains(matches[1], completedMark),
		Data:          matches[4],
		DueDate:       ParseDate(matches[2]),
		CompletedDate: ParseDate(matches[3]),
	}
	Reconcile(&task, c.now())
	return task, true
}

func (c *MarkdownCodec) formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

func (c *MarkdownCodec) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// ParseDate parses a record timestamp into UTC; blank or malformed input
// returns nil.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
