package metrics

import (
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя, чтобы сервис работал с выключенными метриками
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge

	// Доменные метрики
	BookingsCreated  prometheus.Counter
	BookingsRejected *prometheus.CounterVec
	Cancellations    *prometheus.CounterVec
	PointsChanged    *prometheus.CounterVec
	Notifications    *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	namespace := namespaceFor(serviceName)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of database queries",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Total number of failed database queries",
		}, []string{"operation"}),
		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "open_connections",
			Help:      "Number of established connections",
		}),
		DBInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "in_use_connections",
			Help:      "Number of connections currently in use",
		}),
		DBIdle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "idle_connections",
			Help:      "Number of idle connections",
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "wait_count",
			Help:      "Total number of connections waited for",
		}),

		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "created_total",
			Help:      "Total number of created appointments",
		}),
		BookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "rejected_total",
			Help:      "Total number of rejected booking attempts",
		}, []string{"reason"}),
		Cancellations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "cancellations_total",
			Help:      "Total number of cancelled appointments",
		}, []string{"actor", "refund"}),
		PointsChanged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loyalty",
			Name:      "points_changed_total",
			Help:      "Sum of absolute points changes",
		}, []string{"kind"}),
		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Total number of notification attempts",
		}, []string{"status"}),
	}
}

// namespaceFor приводит имя сервиса к допустимому имени prometheus
func namespaceFor(serviceName string) string {
	name := strings.ToLower(strings.TrimSpace(serviceName))
	name = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name)
	if name == "" {
		return "salon"
	}
	return name
}

// BookingCreated учитывает созданную запись
func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// BookingRejected учитывает отказ в записи
func (m *Metrics) BookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

// AppointmentCancelled учитывает отмену с размером возврата
func (m *Metrics) AppointmentCancelled(actor string, refund int) {
	if m == nil {
		return
	}
	m.Cancellations.WithLabelValues(actor, strconv.Itoa(refund)).Inc()
}

// PointsChange учитывает изменение баланса по виду операции
func (m *Metrics) PointsChange(kind string, diff int) {
	if m == nil {
		return
	}
	if diff < 0 {
		diff = -diff
	}
	m.PointsChanged.WithLabelValues(kind).Add(float64(diff))
}

// NotificationSent учитывает попытку отправки уведомления
func (m *Metrics) NotificationSent(ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "failed"
	}
	m.Notifications.WithLabelValues(status).Inc()
}
