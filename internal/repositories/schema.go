package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema is applied at startup; the store is a local SQLite file and the
// table must exist before the first request is served.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);
`

// CreateSchema creates the users table if it does not exist yet.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
