package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (bool, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Attendance, error)
	DeleteByEmployee(ctx context.Context, employeeID int64) error
}
