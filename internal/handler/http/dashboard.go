package http

import (
	"net/http"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetSnapshot returns the current aggregate counts
	GetSnapshot(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetSnapshot handles GET /dashboard/
func (h *dashboardHandlerImpl) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetSnapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
