package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for rosterd
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Roster Metrics
	PilotsActive            prometheus.Gauge
	PilotsSuspended         prometheus.Gauge
	LifecycleEventsTotal    prometheus.CounterVec
	CallsignReclaimsTotal   prometheus.Counter
	DuplicateCallsignsTotal prometheus.Counter

	// Notification Metrics
	NotificationsSentTotal    prometheus.Counter
	NotificationsFailedTotal  prometheus.Counter
	NotificationsDroppedTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rosterd_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rosterd_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rosterd_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		PilotsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rosterd_pilots_active",
				Help: "Current number of active pilots on the roster",
			},
		),
		PilotsSuspended: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rosterd_pilots_suspended",
				Help: "Current number of suspended pilots on the roster",
			},
		),
		LifecycleEventsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rosterd_lifecycle_events_total",
				Help: "Lifecycle events emitted by kind (creation, suspension, reactivation)",
			},
			[]string{"kind"},
		),
		CallsignReclaimsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rosterd_callsign_reclaims_total",
				Help: "Creation requests resolved by reclaiming a suspended record",
			},
		),
		DuplicateCallsignsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rosterd_duplicate_callsigns_total",
				Help: "Creation or edit requests rejected for an active-callsign collision",
			},
		),

		NotificationsSentTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rosterd_notifications_sent_total",
				Help: "Discord webhook notifications delivered",
			},
		),
		NotificationsFailedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rosterd_notifications_failed_total",
				Help: "Discord webhook notifications that failed delivery",
			},
		),
		NotificationsDroppedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rosterd_notifications_dropped_total",
				Help: "Lifecycle events dropped before reaching the queue",
			},
		),
	}
}
