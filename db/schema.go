// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/votingbooth/cliparse"
)

// Open connects to the SQL database described by cfg and verifies the
// connection. Only postgres and sqlite are handled here.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	var driver string
	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		driver = "postgres"
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("database type %q is not a SQL database", cfg.DatabaseType)
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		// One writer at a time, and a single shared :memory: database
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is shared by postgres and sqlite, so it sticks to types and
// defaults both understand.
const schema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    name TEXT PRIMARY KEY
);

-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    ballot_name TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voter_ballot_name ON voter(ballot_name);
`
