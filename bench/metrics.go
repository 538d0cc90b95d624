package bench

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const metricsNamespace = "neutronbench"

const (
	actionLabel = "action"
	methodLabel = "method"
	codeLabel   = "code"
)

// Quantiles tracked by every summary, mapped to their allowed error.
var summaryObjectives = map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}

var (
	registry = prometheus.NewRegistry()

	actionDuration = createSummaryVec(
		"action_duration_ms",
		"Execution time in milliseconds of one timed scenario action",
		actionLabel,
	)
	apiRequestDuration = createSummaryVec(
		"api_request_duration_ms",
		"Round trip time in milliseconds of one service API request",
		methodLabel,
	)
	apiRequests = createCounterVec(
		"api_requests_total",
		"Count of service API requests by method and response code",
		methodLabel, codeLabel,
	)
)

// GetHandler returns the HTTP handler serving the package metrics.
func GetHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func createSummaryVec(name, helpMessage string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  metricsNamespace,
			Name:       name,
			Help:       helpMessage,
			Objectives: summaryObjectives,
		},
		labels,
	)
	registry.MustRegister(vec)
	return vec
}

func createCounterVec(name, helpMessage string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      helpMessage,
		},
		labels,
	)
	registry.MustRegister(vec)
	return vec
}

func observeAction(name string, elapsed time.Duration) {
	actionDuration.WithLabelValues(name).Observe(float64(elapsed.Milliseconds()))
}

func observeAPIRequest(method, code string, elapsed time.Duration) {
	apiRequestDuration.WithLabelValues(method).Observe(float64(elapsed.Milliseconds()))
	apiRequests.WithLabelValues(method, code).Inc()
}

// summaryCount returns the number of observations a summary holds for the
// given label values. Tests use it to assert instrumentation happened.
func summaryCount(vec *prometheus.SummaryVec, labels ...string) (int, error) {
	summary, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0, err
	}
	m := &dto.Metric{}
	if err := summary.(prometheus.Metric).Write(m); err != nil {
		return 0, err
	}
	return int(m.GetSummary().GetSampleCount()), nil
}

// counterValue returns the current value of a counter for the given label
// values. Tests use it to assert instrumentation happened.
func counterValue(vec *prometheus.CounterVec, labels ...string) (float64, error) {
	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0, err
	}
	m := &dto.Metric{}
	if err := counter.Write(m); err != nil {
		return 0, err
	}
	return m.GetCounter().GetValue(), nil
}
