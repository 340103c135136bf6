package sqlite

import "time"

// TaskRow is one row of the tasks table. Position is the 0-based list index.
type TaskRow struct {
	Position      int
	Completed     bool
	Data          string
	DueDate       *time.Time
	CompletedDate *time.Time
}
