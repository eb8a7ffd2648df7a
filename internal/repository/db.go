package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"breathed/internal/providers"
	"breathed/internal/structures"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	uid          TEXT PRIMARY KEY,
	display_name TEXT NOT NULL,
	created_at   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS friend_requests (
	id         TEXT PRIMARY KEY,
	from_uid   TEXT NOT NULL,
	to_uid     TEXT NOT NULL,
	status     TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_friend_requests_to ON friend_requests(to_uid);
CREATE INDEX IF NOT EXISTS idx_friend_requests_from ON friend_requests(from_uid);
CREATE TABLE IF NOT EXISTS friendships (
	id         TEXT PRIMARY KEY,
	user_a     TEXT NOT NULL,
	user_b     TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_friendships_a ON friendships(user_a);
CREATE INDEX IF NOT EXISTS idx_friendships_b ON friendships(user_b);
CREATE TABLE IF NOT EXISTS nudges (
	id         TEXT PRIMARY KEY,
	from_uid   TEXT NOT NULL,
	to_uid     TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_nudges_to ON nudges(to_uid);
`

// NewDB opens the local document store. The social collections are flat
// rows queried by equality filters only, no joins.
func NewDB(conf *structures.Config, logger providers.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", conf.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %s: %w", conf.Database.Path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot apply schema: %w", err)
	}
	logger.Infof(providers.TypeApp, "Database opened at %s", conf.Database.Path)
	return db, nil
}
