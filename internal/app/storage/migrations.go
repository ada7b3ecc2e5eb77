package storage

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

// migrations are applied in order; each runs once and is recorded in
// schema_version.
var migrations = []migration{
	{
		version: 1,
		name:    "initial schema",
		sql: `
CREATE TABLE IF NOT EXISTS scrambles (
	scramble_id TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	cube_size   INTEGER NOT NULL,
	length      INTEGER NOT NULL,
	notation    TEXT NOT NULL,
	state_json  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS solves (
	solve_id    TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	cube_size   INTEGER NOT NULL,
	scramble_id TEXT REFERENCES scrambles(scramble_id) ON DELETE SET NULL,
	method      TEXT NOT NULL,
	step_count  INTEGER NOT NULL,
	move_count  INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	notation    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_solves_created_at ON solves(created_at);
CREATE INDEX IF NOT EXISTS idx_scrambles_created_at ON scrambles(created_at);
`,
	},
}

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if current.Valid && m.version <= int(current.Int64) {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version, name) VALUES (?, ?)", m.version, m.name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}

	return nil
}
