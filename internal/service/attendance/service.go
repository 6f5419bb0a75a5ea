package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkAttendance implements attendance.AttendanceService. Marking is
// not an upsert: a second mark for the same (employee, date) is a
// conflict regardless of status.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := req.ParsedDate()

	marked, err := s.attendanceRepo.ExistsByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check attendance: %w", err)
	}
	if marked {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyMarked
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		Status:     req.Status,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			// Concurrent mark for the same day; the unique constraint
			// on (employee_id, date) decides.
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyMarked
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return attendance.AttendanceResponse{
		ID:     created.ID,
		Date:   created.Date.Format(validator.DateFormat),
		Status: created.Status,
	}, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, employeeID string) ([]attendance.AttendanceDayResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}

	history := make([]attendance.AttendanceDayResponse, 0, len(records))
	for _, rec := range records {
		history = append(history, attendance.AttendanceDayResponse{
			Date:   rec.Date.Format(validator.DateFormat),
			Status: rec.Status,
		})
	}
	return history, nil
}
