package salon

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestGetSettingsQuery_LocksRowInTransaction(t *testing.T) {
	query, _, err := getSettingsQuery(true).ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query, "ORDER BY id ASC LIMIT 1 FOR UPDATE"))

	query, _, err = getSettingsQuery(false).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")
}

func TestInsertOffDayQuery(t *testing.T) {
	description := "Christmas"

	tests := []struct {
		name string
		rule domain.OffDayRule
		args []interface{}
	}{
		{
			name: "weekly",
			rule: domain.WeeklyOffDay{DayOfWeek: 6},
			args: []interface{}{domain.OffDayWeekly, 6, nil, &description},
		},
		{
			name: "specific",
			rule: domain.SpecificOffDay{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
			args: []interface{}{domain.OffDaySpecific, nil, "2025-12-25", &description},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := insertOffDayQuery(&domain.OffDay{Rule: tt.rule, Description: &description}).ToSql()
			require.NoError(t, err)

			assert.Equal(t,
				"INSERT INTO off_days (kind,day_of_week,specific_date,description) VALUES ($1,$2,$3,$4) RETURNING id, created_at",
				query)
			assert.Equal(t, tt.args, args)
		})
	}
}
