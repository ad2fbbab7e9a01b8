package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus для HTTP-слоя и жизненного цикла бронирований
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal    prometheus.Counter
	BookingsWaitlistedTotal prometheus.Counter
	BookingsDecidedTotal    *prometheus.CounterVec
	WaitlistPromotedTotal   prometheus.Counter
	WaitlistPromotionFailed prometheus.Counter
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings admitted into the active set",
			ConstLabels: labels,
		}),

		BookingsWaitlistedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_waitlisted_total",
			Help:        "Requests routed to the waitlist on full or disabled slots",
			ConstLabels: labels,
		}),

		BookingsDecidedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_decided_total",
			Help:        "Bookings moved to a terminal status by an operator",
			ConstLabels: labels,
		}, []string{"status"}),

		WaitlistPromotedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "waitlist_promoted_total",
			Help:        "Waitlist entries promoted into bookings",
			ConstLabels: labels,
		}),

		WaitlistPromotionFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "waitlist_promotion_failed_total",
			Help:        "Promotion attempts refused because the slot was still full",
			ConstLabels: labels,
		}),
	}
}

// BookingCreated фиксирует принятое бронирование
func (m *Metrics) BookingCreated() {
	m.BookingsCreatedTotal.Inc()
}

// BookingWaitlisted фиксирует заявку, ушедшую в лист ожидания
func (m *Metrics) BookingWaitlisted() {
	m.BookingsWaitlistedTotal.Inc()
}

// BookingDecided фиксирует терминальный переход бронирования
func (m *Metrics) BookingDecided(status string) {
	m.BookingsDecidedTotal.WithLabelValues(status).Inc()
}

// WaitlistPromoted фиксирует успешное продвижение из листа ожидания
func (m *Metrics) WaitlistPromoted() {
	m.WaitlistPromotedTotal.Inc()
}

// WaitlistPromotionRefused фиксирует отказ в продвижении
func (m *Metrics) WaitlistPromotionRefused() {
	m.WaitlistPromotionFailed.Inc()
}
