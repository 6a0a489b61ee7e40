package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/handler/http/response"
	"github.com/workq/workq-backend-go/internal/pkg/calendar"
	"github.com/workq/workq-backend-go/internal/pkg/timeclock"
)

type TimesheetHandler interface {
	UpsertWork(w http.ResponseWriter, r *http.Request)
	DeleteWork(w http.ResponseWriter, r *http.Request)
	UpsertLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
	Day(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Clock(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// UpsertWork implements TimesheetHandler.
func (h *TimesheetHandlerImpl) UpsertWork(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpsertWorkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertWork decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.timesheetService.UpsertWork(r.Context(), req)
	if err != nil {
		slog.Error("UpsertWork service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DeleteWork implements TimesheetHandler.
func (h *TimesheetHandlerImpl) DeleteWork(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := calendar.ParseDateKey(date); !ok {
		response.HandleError(w, timesheet.ErrInvalidDateKey)
		return
	}

	resp, err := h.timesheetService.DeleteWork(r.Context(), date)
	if err != nil {
		slog.Error("DeleteWork service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpsertLeave implements TimesheetHandler.
func (h *TimesheetHandlerImpl) UpsertLeave(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpsertLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.timesheetService.UpsertLeave(r.Context(), req)
	if err != nil {
		slog.Error("UpsertLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DeleteLeave implements TimesheetHandler.
func (h *TimesheetHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := calendar.ParseDateKey(date); !ok {
		response.HandleError(w, timesheet.ErrInvalidDateKey)
		return
	}

	resp, err := h.timesheetService.DeleteLeave(r.Context(), date)
	if err != nil {
		slog.Error("DeleteLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Day implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Day(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := calendar.ParseDateKey(date); !ok {
		response.HandleError(w, timesheet.ErrInvalidDateKey)
		return
	}

	entry, err := h.timesheetService.Day(r.Context(), date)
	if err != nil {
		slog.Error("Day service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Calendar implements TimesheetHandler. Year and month default to the
// current month when the query parameters are absent.
func (h *TimesheetHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.timesheetService.Calendar(r.Context(), year, month)
	if err != nil {
		slog.Error("Calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Clock implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	now := timeclock.Now()
	response.Success(w, timesheet.ClockResponse{
		Time:    now,
		Display: now.Display(),
	})
}
