package attendance

import (
	"time"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// Validate checks the request shape. Status is deliberately left
// unconstrained: the ledger stores any string, and only "Present" and
// "Absent" are visible to the dashboard counts.
func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "Employee ID is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParsedDate returns the calendar date carried by the request. Call
// only after Validate has succeeded.
func (r *MarkAttendanceRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type AttendanceResponse struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// AttendanceDayResponse is one (date, status) pair in an employee's
// attendance history.
type AttendanceDayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}
