package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	undefined := &pgconn.PgError{Code: "42P01", Message: `relation "reviews" does not exist`}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "reviews_product_id_fkey"}
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsUndefinedTable(undefined))
	assert.True(t, IsUndefinedTable(fmt.Errorf("count reviews: %w", undefined)))
	assert.False(t, IsUndefinedTable(fk))

	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert review: %w", fk)))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(errors.New("violates foreign key constraint")))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestFitsInt4(t *testing.T) {
	assert.True(t, FitsInt4(1))
	assert.True(t, FitsInt4(2147483647))
	assert.True(t, FitsInt4(-2147483648))
	assert.False(t, FitsInt4(2147483648))
	assert.False(t, FitsInt4(3000000000))
	assert.False(t, FitsInt4(-2147483649))
}
