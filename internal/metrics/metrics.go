// Package metrics exposes Prometheus collectors for booking outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK = "ok"
)

var (
	// BookingOperations counts booking workflow calls by operation
	// (get, create, update) and outcome (ok or an error kind).
	BookingOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hotel_booking",
		Name:      "booking_operations_total",
		Help:      "Booking workflow operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	// HotelRequests counts hotel browsing calls by operation and outcome.
	HotelRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hotel_booking",
		Name:      "hotel_requests_total",
		Help:      "Hotel browsing requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	// EventPublishFailures counts booking events that could not be published.
	EventPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hotel_booking",
		Name:      "event_publish_failures_total",
		Help:      "Booking events that failed to reach the broker.",
	})
)
