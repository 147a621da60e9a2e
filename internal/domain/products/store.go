package products

import (
	"context"
	"errors"
	"fmt"

	"reviewapi/internal/infra/dbx"
	"reviewapi/internal/store"

	"github.com/jackc/pgx/v5"
)

type Store interface {
	Create(ctx context.Context, name string) (int64, error)
	GetName(ctx context.Context, id int64) (string, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Product, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

// Create inserts a product and returns the id the database assigned.
func (r *Repository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `INSERT INTO products (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetName returns store.ErrNotFound when no product has the given id.
func (r *Repository) GetName(ctx context.Context, id int64) (string, error) {
	if !dbx.FitsInt4(id) {
		return "", fmt.Errorf("product %d: %w", id, store.ErrNotFound)
	}

	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM products WHERE id = $1`, id).Scan(&name)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return "", fmt.Errorf("product %d: %w", id, store.ErrNotFound)
	case dbx.IsUndefinedTable(err):
		return "", fmt.Errorf("product %d: %w", id, store.ErrNoSchema)
	case err != nil:
		return "", fmt.Errorf("get product name: %w", err)
	}
	return name, nil
}

func (r *Repository) Rename(ctx context.Context, id int64, name string) error {
	if !dbx.FitsInt4(id) {
		return fmt.Errorf("product %d: %w", id, store.ErrNotFound)
	}
	tag, err := r.db.Exec(ctx, `UPDATE products SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("rename product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, store.ErrNotFound)
	}
	return nil
}

// Delete removes the product; its reviews go with it (ON DELETE CASCADE).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if !dbx.FitsInt4(id) {
		return fmt.Errorf("product %d: %w", id, store.ErrNotFound)
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, store.ErrNotFound)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM products ORDER BY id`)
	if err != nil {
		if dbx.IsUndefinedTable(err) {
			return nil, store.ErrNoSchema
		}
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	list := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		if dbx.IsUndefinedTable(err) {
			return nil, store.ErrNoSchema
		}
		return nil, err
	}
	return list, nil
}
