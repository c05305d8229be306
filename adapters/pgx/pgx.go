// Package pgx provides a PostgreSQL-backed KVStorage adapter for
// deployments that want the collection in a shared database instead of a
// local file. The whole-collection-per-key contract is unchanged: each Set
// replaces one row.
package pgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskgate/taskgate"
)

const defaultTable = "taskgate_kv"

type Adapter struct {
	pool  *pgxpool.Pool
	table string
}

var _ taskgate.KVStorage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{pool: pool, table: defaultTable}
}

// EnsureSchema creates the key-value table if it does not exist.
func (a *Adapter) EnsureSchema(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
		a.table,
	))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", a.table, err)
	}
	return nil
}

func (a *Adapter) Get(key string) (string, bool, error) {
	var value string

	err := a.pool.QueryRow(context.Background(), fmt.Sprintf(
		`SELECT value FROM %s WHERE key = $1`, a.table,
	), key).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return value, true, nil
}

func (a *Adapter) Set(key, value string) error {
	_, err := a.pool.Exec(context.Background(), fmt.Sprintf(
		`INSERT INTO %s (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, a.table,
	), key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
