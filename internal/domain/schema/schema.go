package schema

import (
	"context"
	"fmt"

	"reviewapi/internal/infra/dbx"
)

const (
	Products = "products"
	Reviews  = "reviews"
)

// LockKey identifies the transaction-scoped advisory lock taken before any
// CREATE TABLE, so concurrent first writes cannot race on the catalog.
const LockKey int64 = 0x72657669657773

var createStatements = map[string]string{
	Products: `CREATE TABLE IF NOT EXISTS products (id SERIAL PRIMARY KEY, name TEXT);`,
	Reviews: `
CREATE TABLE IF NOT EXISTS reviews (
    product_id INTEGER,
    rating     REAL,
    date       TIMESTAMP,
    FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE CASCADE,
    feedback   TEXT
);`,
}

// Store creates tables on demand. Existing tables are never altered.
type Store interface {
	Lock(ctx context.Context) error
	Ensure(ctx context.Context, table string) error
}

type Manager struct {
	db dbx.Querier
}

func NewManager(q dbx.Querier) *Manager {
	return &Manager{db: q}
}

// Lock takes the schema advisory lock for the rest of the current
// transaction. Outside a transaction it is released as soon as the statement
// finishes.
func (m *Manager) Lock(ctx context.Context) error {
	if _, err := m.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, LockKey); err != nil {
		return fmt.Errorf("lock schema: %w", err)
	}
	return nil
}

// Ensure issues CREATE TABLE IF NOT EXISTS for table. Calling it any number
// of times leaves existing rows untouched. reviews references products, so
// products has to be ensured first.
func (m *Manager) Ensure(ctx context.Context, table string) error {
	stmt, ok := createStatements[table]
	if !ok {
		return fmt.Errorf("ensure table: unknown table %q", table)
	}
	if _, err := m.db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("ensure table %s: %w", table, err)
	}
	return nil
}
