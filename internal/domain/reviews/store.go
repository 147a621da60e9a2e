package reviews

import (
	"context"
	"fmt"

	"reviewapi/internal/infra/dbx"
	"reviewapi/internal/store"
)

type Store interface {
	Create(ctx context.Context, review Review) error
	CountAll(ctx context.Context) (int64, error)
	CountForProduct(ctx context.Context, productID int64) (int64, error)
	AverageRating(ctx context.Context, productID int64) (store.NullFloat64, error)
	ListForProduct(ctx context.Context, productID int64) ([]Review, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

// Create inserts a review. A product id with no matching product yields
// store.ErrConflict.
func (r *Repository) Create(ctx context.Context, review Review) error {
	if !dbx.FitsInt4(review.ProductID) {
		return fmt.Errorf("product %d does not exist: %w", review.ProductID, store.ErrConflict)
	}

	query := `
        INSERT INTO reviews (product_id, rating, date, feedback)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, review.ProductID, review.Rating, review.Date, review.Feedback)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return fmt.Errorf("product %d does not exist: %w", review.ProductID, store.ErrConflict)
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&total); err != nil {
		return 0, wrapErr("count reviews", err)
	}
	return total, nil
}

func (r *Repository) CountForProduct(ctx context.Context, productID int64) (int64, error) {
	if !dbx.FitsInt4(productID) {
		return 0, nil
	}

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE product_id = $1`, productID).Scan(&total)
	if err != nil {
		return 0, wrapErr("count product reviews", err)
	}
	return total, nil
}

// AverageRating is invalid (JSON null) when the product has no reviews.
func (r *Repository) AverageRating(ctx context.Context, productID int64) (store.NullFloat64, error) {
	if !dbx.FitsInt4(productID) {
		return store.NullFloat64{}, nil
	}

	var avg *float64
	err := r.db.QueryRow(ctx, `SELECT AVG(rating) AS average FROM reviews WHERE product_id = $1`, productID).Scan(&avg)
	if err != nil {
		return store.NullFloat64{}, wrapErr("average rating", err)
	}
	return store.NewNullFloat64(avg), nil
}

// ListForProduct never matches an id wider than the INTEGER column.
func (r *Repository) ListForProduct(ctx context.Context, productID int64) ([]Review, error) {
	if !dbx.FitsInt4(productID) {
		return []Review{}, nil
	}

	query := `
        SELECT product_id, rating, date, feedback
        FROM reviews
        WHERE product_id = $1
        ORDER BY date
    `
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, wrapErr("failed to query reviews", err)
	}
	defer rows.Close()

	list := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ProductID, &rv.Rating, &rv.Date, &rv.Feedback); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		list = append(list, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate review rows", err)
	}
	return list, nil
}

func wrapErr(op string, err error) error {
	if dbx.IsUndefinedTable(err) {
		return fmt.Errorf("%s: %w", op, store.ErrNoSchema)
	}
	return fmt.Errorf("%s: %w", op, err)
}
