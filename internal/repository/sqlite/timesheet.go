package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/workq/workq-backend-go/internal/domain/timesheet"
)

// timesheetRepositoryImpl stores timesheets relationally: one row per work
// record, one per leave record, plus a profile row for the hourly rate.
// Mutations go through the in-memory store, so Save rewrites the user's rows
// wholesale in one transaction.
type timesheetRepositoryImpl struct {
	db *sql.DB
}

func NewTimesheetRepository(db *sql.DB) timesheet.Repository {
	return &timesheetRepositoryImpl{db: db}
}

func (r *timesheetRepositoryImpl) Load(ctx context.Context, userID string) (timesheet.Snapshot, error) {
	snap := timesheet.Snapshot{
		Work:  make(map[string]timesheet.WorkRecord),
		Leave: make(map[string]timesheet.LeaveRecord),
		// Overwritten below when a profile row exists, zero rates included.
		HourlyRate: timesheet.DefaultHourlyRate,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := r.db.QueryContext(gctx, `
			SELECT date, in_hour, in_minute, in_meridiem, out_hour, out_minute, out_meridiem,
				break_minutes, working_hours, notes
			FROM work_records
			WHERE user_id = ?
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var rec timesheet.WorkRecord
			if err := rows.Scan(
				&rec.Date,
				&rec.InTime.Hour, &rec.InTime.Minute, &rec.InTime.Meridiem,
				&rec.OutTime.Hour, &rec.OutTime.Minute, &rec.OutTime.Meridiem,
				&rec.BreakMinutes, &rec.WorkingHours, &rec.Notes,
			); err != nil {
				return err
			}
			snap.Work[rec.Date] = rec
		}
		return rows.Err()
	})

	g.Go(func() error {
		rows, err := r.db.QueryContext(gctx, `
			SELECT date, leave_type, reason
			FROM leave_records
			WHERE user_id = ?
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var rec timesheet.LeaveRecord
			if err := rows.Scan(&rec.Date, &rec.Type, &rec.Reason); err != nil {
				return err
			}
			snap.Leave[rec.Date] = rec
		}
		return rows.Err()
	})

	g.Go(func() error {
		err := r.db.QueryRowContext(gctx,
			`SELECT hourly_rate FROM profiles WHERE user_id = ?`, userID,
		).Scan(&snap.HourlyRate)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return timesheet.Snapshot{}, err
	}

	return snap, nil
}

func (r *timesheetRepositoryImpl) Save(ctx context.Context, userID string, snap timesheet.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM work_records WHERE user_id = ?`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM leave_records WHERE user_id = ?`, userID); err != nil {
		return err
	}

	for _, rec := range snap.Work {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO work_records (user_id, date, in_hour, in_minute, in_meridiem,
				out_hour, out_minute, out_meridiem, break_minutes, working_hours, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			userID, rec.Date,
			rec.InTime.Hour, rec.InTime.Minute, rec.InTime.Meridiem,
			rec.OutTime.Hour, rec.OutTime.Minute, rec.OutTime.Meridiem,
			rec.BreakMinutes, rec.WorkingHours, rec.Notes,
		); err != nil {
			return err
		}
	}

	for _, rec := range snap.Leave {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO leave_records (user_id, date, leave_type, reason)
			VALUES (?, ?, ?, ?)
		`, userID, rec.Date, rec.Type, rec.Reason); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO profiles (user_id, hourly_rate)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET hourly_rate = excluded.hourly_rate
	`, userID, snap.HourlyRate); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
