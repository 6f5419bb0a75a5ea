package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSnapshot returns the current aggregate counts, with "today"
	// evaluated against the system clock at call time
	GetSnapshot(ctx context.Context) (*SnapshotResponse, error)
}
