package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRow scans a single task row
func ScanTaskRow(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	var dueDate, completedDate sql.NullString

	err := scanner.Scan(
		&row.Position,
		&row.Completed,
		&row.Data,
		&dueDate,
		&completedDate,
	)
	if err != nil {
		return nil, err
	}

	row.DueDate = ParseNullTimeFromDB(dueDate)
	row.CompletedDate = ParseNullTimeFromDB(completedDate)
	return row, nil
}

// ScanTaskRows scans multiple task rows
func ScanTaskRows(rows Rows) ([]*TaskRow, error) {
	var result []*TaskRow
	for rows.Next() {
		row, err := ScanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
