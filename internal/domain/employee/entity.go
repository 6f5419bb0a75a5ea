package employee

import "time"

// Employee is a directory record. ID is the system-assigned surrogate
// key; EmployeeID is the caller-supplied external identifier.
type Employee struct {
	ID         int64
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
}
