package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppointment_EndTimeIsStartPlusDuration(t *testing.T) {
	for _, duration := range []int{15, 45, 60, 90, 480} {
		apt, err := NewAppointment(7, nil, "Treatment", wednesday, "09:00", duration)
		require.NoError(t, err)

		start, _ := apt.StartTime.Minutes()
		end, _ := apt.EndTime.Minutes()
		assert.Equal(t, duration, end-start)
		assert.Equal(t, StatusConfirmed, apt.Status)
		assert.Equal(t, BookingCost, apt.PointsDeducted)
	}

	_, err := NewAppointment(7, nil, "Treatment", wednesday, "23:00", 120)
	assert.ErrorIs(t, err, ErrInvalidAppointment)
}

func TestAppointment_Cancel(t *testing.T) {
	apt, err := NewAppointment(7, nil, "Treatment", wednesday, "09:00", 60)
	require.NoError(t, err)
	reason := "salon closed"

	apt.Cancel(wednesday, ActorAdmin, &reason)

	assert.Equal(t, StatusCancelled, apt.Status)
	assert.True(t, apt.AdminCancelled)
	require.NotNil(t, apt.CancelledBy)
	assert.Equal(t, ActorAdmin, *apt.CancelledBy)
	assert.False(t, apt.CanBeCancelled())
	assert.False(t, apt.CanBeCompleted())
}

func TestCustomer_ApplyPoints(t *testing.T) {
	c := &Customer{ID: 3, Points: 10}

	entry, err := c.ApplyPoints(-BookingCost, "Booking: Haircut", ActorSystem)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Points)
	assert.Equal(t, 10, entry.OldPoints)
	assert.Equal(t, 0, entry.NewPoints)
	assert.True(t, entry.IsConsistent())

	_, err = c.ApplyPoints(-1, "overdraw", ActorSystem)
	assert.ErrorIs(t, err, ErrNegativeBalance)
	assert.Equal(t, 0, c.Points)
}

func TestReferral_CompleteOnce(t *testing.T) {
	r := &Referral{Status: ReferralPending}

	require.NoError(t, r.Complete(time.Now()))
	assert.Equal(t, ReferralCompleted, r.Status)
	assert.ErrorIs(t, r.Complete(time.Now()), ErrReferralCompleted)
}

func TestSalonSettings_WorkingWindow(t *testing.T) {
	s := DefaultSalonSettings()
	s.WorkingHoursStart, s.WorkingHoursEnd = "10:30", "20:00"
	start, end := s.WorkingWindow()
	assert.Equal(t, 630, start)
	assert.Equal(t, 1200, end)

	s.WorkingHoursStart, s.WorkingHoursEnd = "19:00", "10:00"
	start, end = s.WorkingWindow()
	assert.Equal(t, 540, start)
	assert.Equal(t, 1080, end)
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+60123456789", CleanPhone(" +60 (12) 345-6789 "))
}

func TestCustomer_NotificationHandle(t *testing.T) {
	handle := func(v string) *Customer { return &Customer{TelegramHandle: &v} }

	assert.Equal(t, "", (&Customer{}).NotificationHandle())
	assert.Equal(t, "123456789", handle(" 123456789 ").NotificationHandle())
	assert.Equal(t, "-100200300", handle("-100200300").NotificationHandle())
	assert.Equal(t, "", handle("@anna").NotificationHandle())
	assert.Equal(t, "", handle("anna").NotificationHandle())
}
