package dashboard

import (
	"context"
	"time"
)

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployees returns the cardinality of the employee set
	CountEmployees(ctx context.Context) (int64, error)

	// CountAttendanceByDateAndStatus counts ledger entries for a calendar
	// date whose status exactly equals the given string
	CountAttendanceByDateAndStatus(ctx context.Context, date time.Time, status string) (int64, error)
}
