package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, status, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID, newAttendance.Date, newAttendance.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return created, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_records WHERE employee_id = $1 AND date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID int64) error {
	q := GetQuerier(ctx, a.db)

	_, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}

	return nil
}
