package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountAttendanceByDateAndStatus implements dashboard.DashboardRepository.
// Status matching is exact: anything other than the literal stored value
// counts as zero.
func (r *dashboardRepositoryImpl) CountAttendanceByDateAndStatus(ctx context.Context, date time.Time, status string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE date = $1 AND status = $2`,
		date, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	return count, nil
}
