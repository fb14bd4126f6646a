package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableState    = "state_documents"
	tableLLM      = "llm_request_events"
	tablePractice = "practice_events"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS state_documents (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success BOOLEAN NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_purpose ON llm_request_events (purpose)`,
	`CREATE TABLE IF NOT EXISTS practice_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		run_id TEXT NOT NULL,
		day TEXT NOT NULL,
		mode TEXT NOT NULL,
		xp INTEGER NOT NULL,
		points INTEGER NOT NULL,
		missed_count INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		accepted BOOLEAN NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS practice_events_day ON practice_events (day)`,
}

// migrate creates the tables this package needs. Statements are idempotent.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec DDL: %w", err)
		}
	}
	return nil
}
