package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode, enables foreign keys, and runs migrations.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                TEXT PRIMARY KEY,
		email             TEXT NOT NULL UNIQUE,
		password_hash     TEXT,
		full_name         TEXT NOT NULL,
		employee_code     TEXT NOT NULL,
		role              TEXT NOT NULL CHECK(role IN ('admin','employee')),
		oauth_provider    TEXT,
		oauth_provider_id TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL UNIQUE,
		user_agent TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT '',
		expires_at TEXT NOT NULL,
		revoked_at TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,

	`CREATE TABLE IF NOT EXISTS work_records (
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date          TEXT NOT NULL,
		in_hour       TEXT NOT NULL DEFAULT '',
		in_minute     TEXT NOT NULL DEFAULT '',
		in_meridiem   TEXT NOT NULL DEFAULT '',
		out_hour      TEXT NOT NULL DEFAULT '',
		out_minute    TEXT NOT NULL DEFAULT '',
		out_meridiem  TEXT NOT NULL DEFAULT '',
		break_minutes INTEGER NOT NULL DEFAULT 60,
		working_hours REAL NOT NULL DEFAULT 0,
		notes         TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (user_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS leave_records (
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date       TEXT NOT NULL,
		leave_type TEXT NOT NULL,
		reason     TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (user_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		user_id     TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		hourly_rate REAL NOT NULL DEFAULT 500
	)`,
}
