package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSettings struct {
	settings *domain.SalonSettings
	err      error
}

func (f *fakeSettings) GetSettings(context.Context) (*domain.SalonSettings, error) {
	return f.settings, f.err
}

type sent struct {
	token, chatID, text string
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []sent
	failFor string
	ctxErr  error
}

func (f *fakeSender) Send(ctx context.Context, token, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ctxErr = ctx.Err()
	if chatID == f.failFor {
		return errors.New("chat not found")
	}
	f.sent = append(f.sent, sent{token: token, chatID: chatID, text: text})
	return nil
}

type fakeMetrics struct {
	ok, failed int
}

func (f *fakeMetrics) NotificationSent(ok bool) {
	if ok {
		f.ok++
	} else {
		f.failed++
	}
}

func customer() *domain.Customer {
	return &domain.Customer{ID: 1, Name: "Ann <VIP>", Phone: "+6011", Points: 20, ReferralCode: "ABCD1234", TelegramHandle: ptr.Ptr("555")}
}

func appointment(t *testing.T) *domain.Appointment {
	t.Helper()
	apt, err := domain.NewAppointment(1, nil, "Hair Color", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), "14:00", 90)
	require.NoError(t, err)
	return apt
}

func TestBookingConfirmed_SendsToCustomerAndAdmin(t *testing.T) {
	settings := domain.DefaultSalonSettings()
	settings.TelegramBotToken = "db-token"
	settings.TelegramChatID = "@salon_admins"

	sender := &fakeSender{}
	metrics := &fakeMetrics{}
	svc := NewService(&fakeSettings{settings: settings}, sender, metrics, Options{BotToken: "cfg-token", AdminChatID: "cfg-chat"}, nopLogger{})

	svc.BookingConfirmed(context.Background(), customer(), appointment(t))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "db-token", sender.sent[0].token)
	assert.Equal(t, "555", sender.sent[0].chatID)
	assert.Contains(t, sender.sent[0].text, "14:00 - 15:30")
	assert.Contains(t, sender.sent[0].text, "12 Mar 2025")
	assert.Equal(t, "@salon_admins", sender.sent[1].chatID)
	assert.Contains(t, sender.sent[1].text, "Ann &lt;VIP&gt;")
	assert.Equal(t, 2, metrics.ok)
}

func TestDispatch_FallsBackToConfig(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(&fakeSettings{err: errors.New("db down")}, sender, &fakeMetrics{}, Options{BotToken: "cfg-token", AdminChatID: "cfg-chat"}, nopLogger{})

	svc.NewCustomer(context.Background(), customer())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "cfg-token", sender.sent[0].token)
	assert.Equal(t, "cfg-chat", sender.sent[0].chatID)
	assert.Contains(t, sender.sent[0].text, "Referral Code: ABCD1234")
}

func TestDispatch_SkipsWithoutTokenOrRecipient(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(&fakeSettings{settings: domain.DefaultSalonSettings()}, sender, &fakeMetrics{}, Options{}, nopLogger{})

	svc.BookingConfirmed(context.Background(), customer(), appointment(t))
	assert.Empty(t, sender.sent)

	svc = NewService(&fakeSettings{settings: domain.DefaultSalonSettings()}, sender, &fakeMetrics{}, Options{BotToken: "t"}, nopLogger{})
	noHandle := customer()
	noHandle.TelegramHandle = nil
	svc.BookingConfirmed(context.Background(), noHandle, appointment(t))
	assert.Empty(t, sender.sent, "no customer handle and no admin chat")
}

func TestDispatch_FailureIsSwallowedAndCounted(t *testing.T) {
	sender := &fakeSender{failFor: "555"}
	metrics := &fakeMetrics{}
	svc := NewService(&fakeSettings{settings: domain.DefaultSalonSettings()}, sender, metrics, Options{BotToken: "t", AdminChatID: "admin"}, nopLogger{})

	svc.BookingCancelled(context.Background(), customer(), appointment(t), domain.Refund{Points: 5, Late: true})

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "admin", sender.sent[0].chatID)
	assert.Equal(t, 1, metrics.ok)
	assert.Equal(t, 1, metrics.failed)
}

func TestDispatch_IgnoresCallerCancellation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(&fakeSettings{settings: domain.DefaultSalonSettings()}, sender, &fakeMetrics{}, Options{BotToken: "t"}, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.AppointmentCompleted(ctx, customer(), appointment(t), domain.CompletionReward)

	require.Len(t, sender.sent, 1)
	assert.NoError(t, sender.ctxErr)
	assert.Contains(t, sender.sent[0].text, "earned 20 points")
}

func TestPointsUpdatedText(t *testing.T) {
	text := pointsUpdatedText(&domain.PointsHistory{OldPoints: 10, NewPoints: 25, Difference: 15, Reason: "Birthday"})

	assert.Contains(t, text, "Previous: 10 points")
	assert.Contains(t, text, "Current: 25 points")
	assert.Contains(t, text, "Change: +15 points")
	assert.Contains(t, text, "Reason: Birthday")
}

func TestBookingCancelledText_LatePenalty(t *testing.T) {
	apt := appointment(t)
	text := bookingCancelledText(apt, domain.Refund{Points: domain.LateCancelRefund, Late: true})

	assert.Contains(t, text, "Refunded: 5 points (late cancellation penalty)")
}
