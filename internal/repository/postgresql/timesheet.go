package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/pkg/database"
)

// timesheetRepositoryImpl keeps each user's full timesheet as a single JSONB
// document. Mutations go through the in-memory store, so writes are always
// whole-snapshot upserts.
type timesheetRepositoryImpl struct {
	db database.Querier
}

func NewTimesheetRepository(db database.Querier) timesheet.Repository {
	return &timesheetRepositoryImpl{db: db}
}

func (r *timesheetRepositoryImpl) Load(ctx context.Context, userID string) (timesheet.Snapshot, error) {
	query := `SELECT data FROM user_timesheets WHERE user_id = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Snapshot{HourlyRate: timesheet.DefaultHourlyRate}, nil
		}
		return timesheet.Snapshot{}, err
	}

	var snap timesheet.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return timesheet.Snapshot{}, err
	}

	return snap, nil
}

func (r *timesheetRepositoryImpl) Save(ctx context.Context, userID string, snap timesheet.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_timesheets (user_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query, userID, raw)
	return err
}
