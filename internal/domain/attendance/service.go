package attendance

import "context"

type AttendanceService interface {
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]AttendanceDayResponse, error)
}
