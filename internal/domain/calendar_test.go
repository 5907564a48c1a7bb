package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDay_Thresholds(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		count    int
		max      int
		expected DayStatus
	}{
		{name: "empty day", count: 0, max: 10, expected: DayAvailable},
		{name: "below half", count: 4, max: 10, expected: DayAvailable},
		{name: "exactly half", count: 5, max: 10, expected: DayLimited},
		{name: "below eighty", count: 7, max: 10, expected: DayLimited},
		{name: "exactly eighty", count: 8, max: 10, expected: DayFewLeft},
		{name: "one left", count: 9, max: 10, expected: DayFewLeft},
		{name: "at capacity", count: 10, max: 10, expected: DayFull},
		{name: "over capacity", count: 12, max: 10, expected: DayFull},
		{name: "zero capacity", count: 0, max: 0, expected: DayFull},
		{name: "single slot day", count: 1, max: 1, expected: DayFull},
		{name: "odd capacity", count: 2, max: 3, expected: DayLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDay(wednesday, now, nil, tt.count, tt.max)
			assert.Equal(t, tt.expected, got.Status)
			assert.Equal(t, tt.expected.Label(), got.Label)
			assert.Equal(t, tt.count, got.BookedCount)
		})
	}
}

func TestClassifyDay_OffDayWinsOverBookings(t *testing.T) {
	now := time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC)
	rule, err := NewSpecificOffDay(wednesday)
	require.NoError(t, err)

	got := ClassifyDay(wednesday, now, OffDays{{Rule: rule}}, 7, 10)

	assert.Equal(t, DayOffDay, got.Status)
	assert.Equal(t, "Off day", got.Label)
	assert.Zero(t, got.BookedCount)
}

func TestClassifyDay_Past(t *testing.T) {
	now := time.Date(2025, 3, 13, 0, 5, 0, 0, time.UTC)

	got := ClassifyDay(wednesday, now, nil, 3, 10)
	assert.Equal(t, DayPast, got.Status)
	assert.Zero(t, got.BookedCount)

	today := ClassifyDay(wednesday, time.Date(2025, 3, 12, 23, 0, 0, 0, time.UTC), nil, 3, 10)
	assert.Equal(t, DayAvailable, today.Status)
}
