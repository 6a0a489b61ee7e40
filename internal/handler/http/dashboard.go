package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/workq/workq-backend-go/internal/domain/dashboard"
	"github.com/workq/workq-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		slog.Error("Overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Monthly implements DashboardHandler.
func (h *DashboardHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "year must be a positive integer", nil)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
		month = time.Month(parsed)
	}

	resp, err := h.dashboardService.Monthly(r.Context(), year, month)
	if err != nil {
		slog.Error("Monthly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
