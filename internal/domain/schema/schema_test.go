package schema

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func TestManager_Ensure_Idempotent(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	m := NewManager(mock)

	for i := 0; i < 3; i++ {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
			WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	}
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS reviews`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Ensure(ctx, Products))
	}
	require.NoError(t, m.Ensure(ctx, Reviews))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Ensure_UnknownTable(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	m := NewManager(mock)

	err := m.Ensure(context.Background(), "users")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown table")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_Ensure_DBError(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	m := NewManager(mock)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS reviews`).
		WillReturnError(errors.New(`relation "products" does not exist`))

	err := m.Ensure(context.Background(), Reviews)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ensure table reviews")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStatements_NeverDestructive(t *testing.T) {
	for table, stmt := range createStatements {
		assert.Contains(t, stmt, "IF NOT EXISTS", table)
		assert.NotContains(t, stmt, "DROP", table)
		assert.NotContains(t, stmt, "ALTER", table)
	}
}

func TestManager_Lock(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	m := NewManager(mock)

	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(LockKey).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WithArgs(LockKey).
		WillReturnError(errors.New("canceling statement due to lock timeout"))

	require.NoError(t, m.Lock(context.Background()))
	err := m.Lock(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}
