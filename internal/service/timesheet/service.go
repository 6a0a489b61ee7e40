package timesheet

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workq/workq-backend-go/internal/domain/auth"
	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/pkg/calendar"
)

type ServiceImpl struct {
	sessions *Sessions
	repo     timesheet.Repository
	logger   *slog.Logger
}

func NewTimesheetService(repo timesheet.Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		sessions: NewSessions(repo),
		repo:     repo,
		logger:   logger,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// persist mirrors the session to the repository. A failed write never rolls
// back the in-memory state; the caller reports it through the Synced flag.
func (s *ServiceImpl) persist(ctx context.Context, userID string, sess *session) bool {
	snap := sess.store.Snapshot()
	snap.HourlyRate = sess.hourlyRate
	if err := s.repo.Save(ctx, userID, snap); err != nil {
		s.logger.Error("timesheet mirror write failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return false
	}
	return true
}

// UpsertWork implements timesheet.Service.
func (s *ServiceImpl) UpsertWork(ctx context.Context, req timesheet.UpsertWorkRequest) (timesheet.MutationResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.store.UpsertWork(req.Date, req.InTime, req.OutTime, req.Break(), req.Notes)
	synced := s.persist(ctx, userID, sess)

	return timesheet.MutationResponse{
		Entry:  sess.store.EntryFor(req.Date),
		Synced: synced,
	}, nil
}

// DeleteWork implements timesheet.Service.
func (s *ServiceImpl) DeleteWork(ctx context.Context, date string) (timesheet.MutationResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.store.DeleteWork(date)
	synced := s.persist(ctx, userID, sess)

	return timesheet.MutationResponse{
		Entry:  sess.store.EntryFor(date),
		Synced: synced,
	}, nil
}

// UpsertLeave implements timesheet.Service.
func (s *ServiceImpl) UpsertLeave(ctx context.Context, req timesheet.UpsertLeaveRequest) (timesheet.MutationResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.store.UpsertLeave(req.Date, timesheet.LeaveType(req.LeaveType), req.Reason)
	synced := s.persist(ctx, userID, sess)

	return timesheet.MutationResponse{
		Entry:  sess.store.EntryFor(req.Date),
		Synced: synced,
	}, nil
}

// DeleteLeave implements timesheet.Service.
func (s *ServiceImpl) DeleteLeave(ctx context.Context, date string) (timesheet.MutationResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.MutationResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.store.DeleteLeave(date)
	synced := s.persist(ctx, userID, sess)

	return timesheet.MutationResponse{
		Entry:  sess.store.EntryFor(date),
		Synced: synced,
	}, nil
}

// Day implements timesheet.Service.
func (s *ServiceImpl) Day(ctx context.Context, date string) (timesheet.DayEntry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.DayEntry{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.DayEntry{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.store.EntryFor(date), nil
}

// Calendar implements timesheet.Service.
func (s *ServiceImpl) Calendar(ctx context.Context, year int, month time.Month) (timesheet.CalendarResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.CalendarResponse{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.CalendarResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	days := calendar.DaysInMonth(year, month)
	cells := make([]timesheet.CalendarCell, 0, len(days))
	for _, day := range days {
		if day == 0 {
			cells = append(cells, timesheet.CalendarCell{})
			continue
		}
		cell := timesheet.CalendarCell{
			Day:  day,
			Date: calendar.DateKey(year, month, day),
		}
		if entry := sess.store.EntryFor(cell.Date); entry.Kind != timesheet.EntryEmpty {
			cell.Entry = &entry
		}
		cells = append(cells, cell)
	}

	return timesheet.CalendarResponse{
		Year:  year,
		Month: int(month),
		Cells: cells,
	}, nil
}

// Profile implements timesheet.Service.
func (s *ServiceImpl) Profile(ctx context.Context) (timesheet.ProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.ProfileResponse{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.ProfileResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return timesheet.ProfileResponse{HourlyRate: sess.hourlyRate, Synced: true}, nil
}

// UpdateProfile implements timesheet.Service.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, req timesheet.UpdateProfileRequest) (timesheet.ProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.ProfileResponse{}, err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return timesheet.ProfileResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.hourlyRate = req.HourlyRate
	synced := s.persist(ctx, userID, sess)

	return timesheet.ProfileResponse{HourlyRate: sess.hourlyRate, Synced: synced}, nil
}

// WithSession runs fn against the user's session under its lock. The
// dashboard service aggregates through this so reads never race mutations.
func (s *ServiceImpl) WithSession(ctx context.Context, fn func(store *timesheet.Store, hourlyRate float64) error) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	sess, err := s.sessions.get(ctx, userID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return fn(sess.store, sess.hourlyRate)
}

var _ timesheet.Service = (*ServiceImpl)(nil)
