// Skills Display - User skills client and development server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsdisplay

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - outbound skills API calls made by the client facades
// - the development server's own traffic and its backend proxy

var (
	// Client Metrics
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skills_client_requests_total",
			Help: "Total number of requests sent to the skills API",
		},
		[]string{"operation", "method", "status_code"}, // status_code is "error" when no response arrived
	)

	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skills_client_request_duration_seconds",
			Help:    "Skills API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation", "method"},
	)

	ClientUpgradeInProgress = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skills_client_upgrade_in_progress_responses_total",
			Help: "Responses that carried upgrade-in-progress: true",
		},
	)

	// Dev Server Metrics
	DevServerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devserver_requests_total",
			Help: "Total number of requests handled by the development server",
		},
		[]string{"method", "route", "status_code"},
	)

	DevServerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devserver_request_duration_seconds",
			Help:    "Development server request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	DevServerActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "devserver_active_requests",
			Help: "Current number of in-flight development server requests",
		},
	)

	DevServerProxyErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "devserver_proxy_errors_total",
			Help: "Requests the backend proxy could not complete",
		},
	)
)

// RecordClientRequest records one outbound skills API call.
// statusCode 0 means the request failed before a response arrived.
func RecordClientRequest(operation, method string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	ClientRequestsTotal.WithLabelValues(operation, method, status).Inc()
	ClientRequestDuration.WithLabelValues(operation, method).Observe(duration.Seconds())
}

// RecordDevServerRequest records one request served by the development server.
func RecordDevServerRequest(method, route, statusCode string, duration time.Duration) {
	DevServerRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	DevServerRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		DevServerActiveRequests.Inc()
	} else {
		DevServerActiveRequests.Dec()
	}
}
