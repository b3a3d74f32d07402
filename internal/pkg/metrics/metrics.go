package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canchas_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "canchas_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// outcome: quoted, checked_out, paid, payment_missing, cancelled
	ReservationEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canchas_reservation_events_total",
			Help: "Reservation workflow transitions",
		},
		[]string{"outcome"},
	)

	// action: joined, deleted, contacted
	WaitlistEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canchas_waitlist_events_total",
			Help: "Waitlist operations",
		},
		[]string{"action"},
	)

	ListingsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canchas_rival_listings_published_total",
			Help: "Rival listings published by type",
		},
		[]string{"type"},
	)

	StoreCorruptReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canchas_store_corrupt_reads_total",
			Help: "Stored values that could not be decoded and were treated as empty",
		},
		[]string{"key"},
	)

	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canchas_store_operations_total",
			Help: "Key-value store operations by backend, operation and status",
		},
		[]string{"backend", "operation", "status"},
	)
)

func RecordStoreOperation(backend, operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreOperations.WithLabelValues(backend, operation, status).Inc()
}
