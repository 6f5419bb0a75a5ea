package attendance

import "time"

// Attendance is a single ledger entry: one status for one employee on
// one calendar date. EmployeeID references the employee's surrogate
// key, not the external identifier.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     string
	CreatedAt  time.Time
}

// Status values the dashboard aggregates over. The data layer does not
// enforce these; any other string is stored but never counted.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)
