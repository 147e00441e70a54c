// Package monitoring exposes prometheus metrics for searches and for the
// search history pipeline.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
)

const namespace = "impact_search"

// History outcomes.
const (
	HistoryWritten = "written"
	HistoryDropped = "dropped"
	HistoryFailed  = "failed"
)

// Metrics holds the service's collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	searches        *prometheus.CounterVec
	topicHits       *prometheus.CounterVec
	searchResults   prometheus.Histogram
	historyEvents   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.searches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Searches by the rule that resolved them",
	}, []string{"match"})
	m.topicHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "topic_hits_total",
		Help:      "Searches that resolved to each topic",
	}, []string{"topic"})
	m.searchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Number of records returned per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	})
	m.historyEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_events_total",
		Help:      "Search history events by outcome",
	}, []string{"outcome"})
	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "status"})

	reg.MustRegister(
		m.searches, m.topicHits, m.searchResults,
		m.historyEvents, m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Register adds extra collectors to the metrics registry.
func (m *Metrics) Register(cs ...prometheus.Collector) error {
	if m == nil {
		return nil
	}
	for _, c := range cs {
		if err := m.registry.Register(c); err != nil {
			return eris.Wrap(err, "monitoring: register collector")
		}
	}
	return nil
}

// ObserveSearch records one resolved (or unresolved) search.
func (m *Metrics) ObserveSearch(match, topic string, results int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(match).Inc()
	if topic != "" {
		m.topicHits.WithLabelValues(topic).Inc()
	}
	m.searchResults.Observe(float64(results))
}

// ObserveHistory records the outcome of one history event.
func (m *Metrics) ObserveHistory(outcome string) {
	if m == nil {
		return
	}
	m.historyEvents.WithLabelValues(outcome).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
