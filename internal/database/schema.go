package database

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS teams (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	is_archived BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	external_id TEXT NOT NULL UNIQUE,
	full_name TEXT NOT NULL,
	avatar_url TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS candidates (
	id BIGSERIAL PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	is_archived BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	requirements TEXT,
	status TEXT NOT NULL DEFAULT 'open',
	team_id BIGINT NOT NULL REFERENCES teams(id),
	hiring_manager_id BIGINT NOT NULL REFERENCES users(id),
	is_archived BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS candidate_positions (
	id BIGSERIAL PRIMARY KEY,
	candidate_id BIGINT NOT NULL REFERENCES candidates(id),
	position_id BIGINT NOT NULL REFERENCES positions(id),
	stage TEXT NOT NULL DEFAULT 'new',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE (candidate_id, position_id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_positions_candidate ON candidate_positions(candidate_id);
CREATE INDEX IF NOT EXISTS idx_candidate_positions_position ON candidate_positions(position_id);
CREATE INDEX IF NOT EXISTS idx_positions_team ON positions(team_id);
`

// Migrate creates the schema if it does not exist yet. The unique constraint on
// candidate_positions(candidate_id, position_id) is the authority for duplicate
// association prevention under concurrent writers.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
