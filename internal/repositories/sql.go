package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// CreateRateStoreTable is the schema of the SQL backend. It is valid for both
// PostgreSQL and SQLite.
const CreateRateStoreTable = `
	CREATE TABLE IF NOT EXISTS rate_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// SQLKeyValue stores entries in the rate_store table of a PostgreSQL
// (pgx driver) or SQLite (sqlite3 driver) database.
type SQLKeyValue struct {
	db *sqlx.DB
}

func NewSQLKeyValue(db *sqlx.DB) *SQLKeyValue {
	return &SQLKeyValue{db: db}
}

// Migrate creates the rate_store table when it does not exist.
func (r *SQLKeyValue) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, CreateRateStoreTable)

	logger.Log.Infow("migrate rate store",
		"query", strings.Join(strings.Fields(CreateRateStoreTable), " "),
		"error", err,
	)
	return err
}

func (r *SQLKeyValue) Get(ctx context.Context, key string) ([]byte, error) {
	query := r.db.Rebind(`SELECT value FROM rate_store WHERE key = ?`)

	var value string
	err := r.db.GetContext(ctx, &value, query, key)

	logger.Log.Debugw("rate store get",
		"query", query,
		"args", []any{key},
		"size", len(value),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

// Put upserts all entries inside one transaction.
func (r *SQLKeyValue) Put(ctx context.Context, entries map[string][]byte) error {
	query := r.db.Rebind(`
		INSERT INTO rate_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key)
		DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for k, v := range entries {
		_, err = tx.ExecContext(ctx, query, k, string(v))

		logger.Log.Debugw("rate store put",
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{k},
			"error", err,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
