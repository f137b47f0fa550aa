package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema statements in order. Every statement is
// IF NOT EXISTS, so re-running against an already-migrated database is a
// no-op.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS drafts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		state TEXT NOT NULL,
		content TEXT NOT NULL,
		submitted_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS snapshots (
		project_id TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		approved_at TEXT NOT NULL,
		content TEXT NOT NULL
	)`,

	// Committed occupancy feeds. Two structurally identical tables: the
	// real feed is live data, the submitted feed is the independently
	// committed pending set. Occupancy is stored as a decimal string.
	`CREATE TABLE IF NOT EXISTS real_allocations (
		user_id TEXT NOT NULL,
		workpackage_id TEXT NOT NULL,
		workpackage_name TEXT NOT NULL,
		project_id TEXT NOT NULL,
		project_name TEXT NOT NULL,
		project_state TEXT NOT NULL,
		month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		year INTEGER NOT NULL,
		occupancy TEXT NOT NULL,
		PRIMARY KEY (user_id, workpackage_id, month, year)
	)`,

	`CREATE TABLE IF NOT EXISTS submitted_allocations (
		user_id TEXT NOT NULL,
		workpackage_id TEXT NOT NULL,
		workpackage_name TEXT NOT NULL,
		project_id TEXT NOT NULL,
		project_name TEXT NOT NULL,
		project_state TEXT NOT NULL,
		month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		year INTEGER NOT NULL,
		occupancy TEXT NOT NULL,
		PRIMARY KEY (user_id, workpackage_id, month, year)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_real_allocations_user_year
		ON real_allocations (user_id, year)`,

	`CREATE INDEX IF NOT EXISTS idx_submitted_allocations_user_year
		ON submitted_allocations (user_id, year)`,
}
