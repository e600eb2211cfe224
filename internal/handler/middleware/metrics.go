package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reservations",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reservations",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingAdmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reservations",
			Name:      "booking_admitted_total",
			Help:      "Count of admitted bookings by initial status.",
		},
		[]string{"status"},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reservations",
			Name:      "booking_rejected_total",
			Help:      "Count of rejected booking attempts by reason.",
		},
		[]string{"reason"},
	)
)

// RegisterMetrics registers the service collectors (idempotent).
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingAdmitted, bookingRejected)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	RegisterMetrics()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func IncBookingAdmitted(status string) {
	bookingAdmitted.WithLabelValues(status).Inc()
}

func IncBookingRejected(reason string) {
	bookingRejected.WithLabelValues(reason).Inc()
}
