package points

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestAppend_RejectsInconsistentEntry(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.Append(context.Background(), &domain.PointsHistory{
		CustomerID: 1,
		OldPoints:  10,
		NewPoints:  0,
		Difference: -5,
	})

	assert.ErrorIs(t, err, ErrInconsistentEntry)
}

func TestListByCustomerQuery(t *testing.T) {
	query, args, err := listByCustomerQuery(3, 50).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM points_history WHERE customer_id = $1 ORDER BY created_at DESC, id DESC LIMIT 50")
	assert.Equal(t, []interface{}{int64(3)}, args)

	query, _, err = listByCustomerQuery(3, 0).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}
