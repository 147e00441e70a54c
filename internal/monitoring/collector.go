package monitoring

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/sells-group/impact-search/internal/model"
)

// TopicCounter is the store method the collector reads.
type TopicCounter interface {
	TopicCounts(ctx context.Context) ([]model.TopicCount, error)
}

// HistoryCollector reports persisted per-topic search counts at scrape time.
// Unlike topic_hits_total, these survive restarts.
type HistoryCollector struct {
	store   TopicCounter
	timeout time.Duration
	desc    *prometheus.Desc
	up      *prometheus.Desc
}

// NewHistoryCollector creates a collector backed by st.
func NewHistoryCollector(st TopicCounter) *HistoryCollector {
	return &HistoryCollector{
		store:   st,
		timeout: 5 * time.Second,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "history", "topic_searches"),
			"Persisted number of searches that resolved to each topic",
			[]string{"topic"}, nil,
		),
		up: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "history", "up"),
			"Whether the last read from the history store succeeded",
			nil, nil,
		),
	}
}

func (c *HistoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
	ch <- c.up
}

func (c *HistoryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counts, err := c.store.TopicCounts(ctx)
	if err != nil {
		zap.L().Warn("monitoring: read topic counts", zap.Error(err))
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)
	for _, tc := range counts {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(tc.Count), tc.Topic)
	}
}
