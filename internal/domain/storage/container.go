package storage

import (
	"context"
	"fmt"

	"reviewapi/internal/domain/products"
	"reviewapi/internal/domain/reviews"
	"reviewapi/internal/domain/schema"
	"reviewapi/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

// Container hands out tx-scoped repositories. Every statement runs inside
// WithTx.
type Container struct {
	pool dbx.TxBeginner // IMPORTANT: set the pool so WithTx works
}

func NewContainer(db dbx.TxBeginner) *Container {
	return &Container{pool: db}
}

// Tx is a temporary, tx-scoped set of repos for one request.
type Tx struct {
	Schema   schema.Store
	Products products.Store
	Reviews  reviews.Store
}

// WithTx runs fn inside a single transaction. It commits when fn returns nil
// and rolls back on error or panic.
func (c *Container) WithTx(ctx context.Context, fn func(s *Tx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &Tx{
		Schema:   schema.NewManager(tx),
		Products: products.NewRepository(tx),
		Reviews:  reviews.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
