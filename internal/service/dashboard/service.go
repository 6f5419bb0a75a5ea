package dashboard

import (
	"context"
	"time"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetSnapshot returns the aggregate counts with the three queries run
// in parallel. "Today" is the server's calendar date at call time, so
// two calls on different days differ even with no writes in between.
func (s *DashboardServiceImpl) GetSnapshot(ctx context.Context) (*dashboard.SnapshotResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var totalEmployees, presentToday, absentToday int64

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountAttendanceByDateAndStatus(gCtx, today, attendance.StatusPresent)
		if err != nil {
			return err
		}
		presentToday = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountAttendanceByDateAndStatus(gCtx, today, attendance.StatusAbsent)
		if err != nil {
			return err
		}
		absentToday = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.SnapshotResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   presentToday,
		AbsentToday:    absentToday,
	}, nil
}
