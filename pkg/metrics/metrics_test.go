package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "SMC-SalonService")

	m.BookingCreated()
	m.BookingCreated()
	m.BookingRejected("slot_unavailable")
	m.AppointmentCancelled("customer", 5)
	m.PointsChange("booking", -10)
	m.NotificationSent(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsRejected.WithLabelValues("slot_unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Cancellations.WithLabelValues("customer", "5")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.PointsChanged.WithLabelValues("booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("failed")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.BookingRejected("day_full")
		m.AppointmentCancelled("admin", 10)
		m.PointsChange("completion", 20)
		m.NotificationSent(true)
	})
}

func TestNamespaceFor(t *testing.T) {
	assert.Equal(t, "smc_salonservice", namespaceFor("SMC-SalonService"))
	assert.Equal(t, "salon", namespaceFor(""))
}
