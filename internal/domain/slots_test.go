package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// 2025-03-12 - среда
var wednesday = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func confirmedAt(t *testing.T, date time.Time, start string, duration int) *Appointment {
	t.Helper()
	apt, err := NewAppointment(1, nil, "Haircut", date, types.TimeString(start), duration)
	require.NoError(t, err)
	return apt
}

func starts(slots []Slot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Start.String())
	}
	return result
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	slots := GenerateSlots(SlotQuery{
		Date:            wednesday,
		DurationMinutes: 60,
		Settings:        DefaultSalonSettings(),
	})

	require.Len(t, slots, 33)
	assert.Equal(t, Slot{Start: "09:00", End: "10:00"}, slots[0])
	assert.Equal(t, Slot{Start: "09:15", End: "10:15"}, slots[1])
	assert.Equal(t, Slot{Start: "17:00", End: "18:00"}, slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.IsBefore(slots[i].Start), "slots must be ascending")
	}
}

func TestGenerateSlots_ExistingAppointment(t *testing.T) {
	slots := GenerateSlots(SlotQuery{
		Date:            wednesday,
		DurationMinutes: 45,
		Settings:        DefaultSalonSettings(),
		Appointments:    []*Appointment{confirmedAt(t, wednesday, "10:00", 60)},
	})
	got := starts(slots)

	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "09:15", "09:15-10:00 touches the booking but does not overlap")
	for _, rejected := range []string{"09:30", "09:45", "10:00", "10:15", "10:30", "10:45"} {
		assert.NotContains(t, got, rejected)
	}
	assert.Contains(t, got, "11:00")
	assert.Equal(t, "17:15", got[len(got)-1])
	assert.Len(t, got, 28)
}

func TestGenerateSlots_OffDayIsAlwaysEmpty(t *testing.T) {
	weekly, err := NewWeeklyOffDay(WeekdayIndex(wednesday))
	require.NoError(t, err)
	specific, err := NewSpecificOffDay(wednesday)
	require.NoError(t, err)

	for name, rule := range map[string]OffDayRule{"weekly": weekly, "specific": specific} {
		t.Run(name, func(t *testing.T) {
			slots := GenerateSlots(SlotQuery{
				Date:            wednesday,
				DurationMinutes: 30,
				Settings:        DefaultSalonSettings(),
				OffDays:         OffDays{{ID: 1, Rule: rule}},
				Appointments:    []*Appointment{confirmedAt(t, wednesday, "12:00", 60)},
			})
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateSlots_MalformedWorkingHoursFallBack(t *testing.T) {
	settings := DefaultSalonSettings()
	settings.WorkingHoursStart = "nine"
	settings.WorkingHoursEnd = "25:00"

	slots := GenerateSlots(SlotQuery{Date: wednesday, DurationMinutes: 60, Settings: settings})

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1].Start)
}

func TestGenerateSlots_IgnoresInactiveAppointments(t *testing.T) {
	cancelled := confirmedAt(t, wednesday, "09:00", 60)
	cancelled.Status = StatusCancelled
	completed := confirmedAt(t, wednesday, "10:00", 60)
	completed.Status = StatusCompleted
	otherDay := confirmedAt(t, wednesday.AddDate(0, 0, 1), "11:00", 60)

	slots := GenerateSlots(SlotQuery{
		Date:            wednesday,
		DurationMinutes: 60,
		Settings:        DefaultSalonSettings(),
		Appointments:    []*Appointment{cancelled, completed, otherDay},
	})

	assert.Len(t, slots, 33)
}

func TestGenerateSlots_BufferExtendsBusyInterval(t *testing.T) {
	settings := DefaultSalonSettings()
	settings.BufferMinutes = 15

	slots := GenerateSlots(SlotQuery{
		Date:            wednesday,
		DurationMinutes: 30,
		Settings:        settings,
		Appointments:    []*Appointment{confirmedAt(t, wednesday, "10:00", 60)},
	})
	got := starts(slots)

	assert.NotContains(t, got, "11:00", "buffer keeps 11:00-11:15 free")
	assert.Contains(t, got, "11:15")
	assert.Contains(t, got, "09:30", "buffer applies after existing bookings only")
}

func TestGenerateSlots_DurationLongerThanDay(t *testing.T) {
	slots := GenerateSlots(SlotQuery{Date: wednesday, DurationMinutes: 600, Settings: DefaultSalonSettings()})
	assert.Empty(t, slots)

	slots = GenerateSlots(SlotQuery{Date: wednesday, DurationMinutes: 0, Settings: DefaultSalonSettings()})
	assert.Empty(t, slots)
}

func TestDropStarted(t *testing.T) {
	slots := []Slot{{Start: "09:00", End: "10:00"}, {Start: "12:00", End: "13:00"}, {Start: "12:15", End: "13:15"}}
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, []Slot{{Start: "12:15", End: "13:15"}}, DropStarted(slots, wednesday, now))
	assert.Equal(t, slots, DropStarted(slots, wednesday.AddDate(0, 0, 1), now))
	assert.Empty(t, DropStarted(slots, wednesday.AddDate(0, 0, -1), now))
}

func TestContainsStart(t *testing.T) {
	slots := []Slot{{Start: "09:00", End: "10:00"}}
	assert.True(t, ContainsStart(slots, "09:00"))
	assert.False(t, ContainsStart(slots, "09:15"))
}
