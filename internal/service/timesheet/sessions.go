package timesheet

import (
	"context"
	"sync"

	"github.com/workq/workq-backend-go/internal/domain/timesheet"
)

// session is one user's live timesheet. All access happens under mu so a
// user's mutations are serialized even across concurrent requests.
type session struct {
	mu         sync.Mutex
	store      *timesheet.Store
	hourlyRate float64
}

// Sessions lazily materializes a per-user session from the repository on the
// first request that touches that user, then keeps it resident. The in-memory
// store is the source of truth; the repository is a mirror.
type Sessions struct {
	mu     sync.RWMutex
	byUser map[string]*session
	repo   timesheet.Repository
}

func NewSessions(repo timesheet.Repository) *Sessions {
	return &Sessions{
		byUser: make(map[string]*session),
		repo:   repo,
	}
}

func (s *Sessions) get(ctx context.Context, userID string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.byUser[userID]
	s.mu.RUnlock()
	if ok {
		return sess, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.byUser[userID]; ok {
		return sess, nil
	}

	snap, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess = &session{
		store:      timesheet.FromSnapshot(snap),
		hourlyRate: snap.HourlyRate,
	}
	s.byUser[userID] = sess
	return sess, nil
}
