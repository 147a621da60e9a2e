package dbx

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of *pgxpool.Pool and pgx.Tx that repositories use.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a Querier that can also open transactions (the pool).
type TxBeginner interface {
	Querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

const (
	codeUndefinedTable      = "42P01"
	codeForeignKeyViolation = "23503"
)

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsUndefinedTable reports whether err is "relation does not exist".
func IsUndefinedTable(err error) bool { return hasCode(err, codeUndefinedTable) }

func IsForeignKeyViolation(err error) bool { return hasCode(err, codeForeignKeyViolation) }

// FitsInt4 reports whether v can be bound to an INTEGER/SERIAL column.
// pgx refuses to encode anything wider, so no row can carry such an id.
func FitsInt4(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
