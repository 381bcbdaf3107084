package http

import (
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Chart(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Chart implements DashboardHandler.
func (h *DashboardHandlerImpl) Chart(w http.ResponseWriter, r *http.Request) {
	selector := r.URL.Query().Get("range")
	if selector == "" {
		selector = dashboard.RangeThisWeek
	}

	result, err := h.dashboardService.GetChart(r.Context(), selector)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
