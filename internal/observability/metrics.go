package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorTotal      *prometheus.CounterVec
	transitionTotal *prometheus.CounterVec
	changeTotal     *prometheus.CounterVec
}

// NewMetrics registers collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		requestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schedule",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "schedule",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		errorTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schedule",
			Name:      "http_errors_total",
			Help:      "Total number of HTTP errors by domain error code.",
		}, []string{"route", "method", "code"}),
		transitionTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schedule",
			Name:      "assignment_transitions_total",
			Help:      "Total number of persisted assignment status transitions.",
		}, []string{"from", "to"}),
		changeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schedule",
			Name:      "change_notifications_total",
			Help:      "Total number of change notifications emitted by topic.",
		}, []string{"topic"}),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errorTotal.WithLabelValues(route, method, code).Inc()
}

// ObserveAssignmentTransition counts a status change.
func (m *Metrics) ObserveAssignmentTransition(from, to domain.AssignmentStatus) {
	if m == nil {
		return
	}
	m.transitionTotal.WithLabelValues(string(from), string(to)).Inc()
}

// RecordChange counts an emitted change notification.
func (m *Metrics) RecordChange(topic string) {
	if m == nil {
		return
	}
	m.changeTotal.WithLabelValues(topic).Inc()
}
