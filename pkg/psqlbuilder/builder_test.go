package psqlbuilder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("services").
		Where(squirrel.Eq{"id": 7}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM services WHERE id = $1 AND is_active = $2", query)
	assert.Equal(t, []interface{}{7, true}, args)
}

func TestInsert_WithReturning(t *testing.T) {
	query, args, err := Insert("off_days").
		Columns("type", "day_of_week").
		Values("weekly", 6).
		Suffix("RETURNING id").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO off_days (type,day_of_week) VALUES ($1,$2) RETURNING id", query)
	assert.Len(t, args, 2)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "customers_phone_key"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", dup)))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))

	assert.Equal(t, "customers_phone_key", ConstraintName(fmt.Errorf("wrapped: %w", dup)))
	assert.Empty(t, ConstraintName(errors.New("plain")))
}
