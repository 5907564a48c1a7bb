package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var date = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func TestGetByIDQuery_LocksInsideTransaction(t *testing.T) {
	query, args, err := getByIDQuery(5, true).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id = $1 FOR UPDATE")
	assert.Equal(t, []interface{}{int64(5)}, args)

	query, _, err = getByIDQuery(5, false).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")
}

func TestListByDateQuery(t *testing.T) {
	query, args, err := listByDateQuery(date, domain.ActiveStatuses).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM appointments WHERE appointment_date = $1 AND status IN ($2,$3) ORDER BY start_time ASC")
	assert.Equal(t, []interface{}{"2025-03-12", "pending", "confirmed"}, args)

	query, args, err = listByDateQuery(date, nil).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "status IN")
	assert.Len(t, args, 1)
}

func TestCountByDateRangeQuery(t *testing.T) {
	query, args, err := countByDateRangeQuery(date, date.AddDate(0, 0, 30)).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT appointment_date, COUNT(*) FROM appointments WHERE appointment_date >= $1 AND appointment_date <= $2 AND status IN ($3,$4) GROUP BY appointment_date",
		query)
	assert.Equal(t, []interface{}{"2025-03-12", "2025-04-11", "pending", "confirmed"}, args)
}

func TestListWithFilterQuery(t *testing.T) {
	status := domain.StatusCancelled
	end := date.AddDate(0, 0, 7)
	customerID := int64(9)

	query, args, err := listWithFilterQuery(domain.AppointmentFilter{
		StartDate:  &date,
		EndDate:    &end,
		Status:     &status,
		CustomerID: &customerID,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE customer_id = $1 AND appointment_date >= $2 AND appointment_date <= $3 AND status = $4")
	assert.Contains(t, query, "ORDER BY appointment_date DESC, start_time DESC")
	assert.Equal(t, []interface{}{int64(9), "2025-03-12", "2025-03-19", domain.StatusCancelled}, args)
}
