package monitoring

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/impact-search/internal/model"
)

type fakeCounter struct {
	counts []model.TopicCount
	err    error
}

func (f *fakeCounter) TopicCounts(context.Context) ([]model.TopicCount, error) {
	return f.counts, f.err
}

func TestMetrics_ObserveSearch(t *testing.T) {
	m := NewMetrics()

	m.ObserveSearch("exact", "hunger", 9)
	m.ObserveSearch("alias", "hunger", 9)
	m.ObserveSearch("none", "", 0)

	assert.InDelta(t, 1, testutil.ToFloat64(m.searches.WithLabelValues("exact")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.searches.WithLabelValues("none")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.topicHits.WithLabelValues("hunger")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.topicHits))
}

func TestMetrics_ObserveHistory(t *testing.T) {
	m := NewMetrics()

	m.ObserveHistory(HistoryWritten)
	m.ObserveHistory(HistoryWritten)
	m.ObserveHistory(HistoryDropped)

	assert.InDelta(t, 2, testutil.ToFloat64(m.historyEvents.WithLabelValues(HistoryWritten)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.historyEvents.WithLabelValues(HistoryDropped)), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	m.ObserveSearch("exact", "ocean", 1)
	m.ObserveHistory(HistoryFailed)
	m.ObserveRequest("/api/search", 200, time.Millisecond)
	assert.NoError(t, m.Register(NewHistoryCollector(&fakeCounter{})))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest("/api/search", 200, 20*time.Millisecond)
	m.ObserveSearch("substring", "ocean", 8)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `impact_search_searches_total{match="substring"} 1`)
	assert.Contains(t, body, `impact_search_http_request_duration_seconds_count{route="/api/search",status="200"} 1`)
}

func TestHistoryCollector(t *testing.T) {
	c := NewHistoryCollector(&fakeCounter{counts: []model.TopicCount{
		{Topic: "ocean", Count: 4},
		{Topic: "hunger", Count: 1},
	}})

	expected := `
# HELP impact_search_history_topic_searches Persisted number of searches that resolved to each topic
# TYPE impact_search_history_topic_searches gauge
impact_search_history_topic_searches{topic="hunger"} 1
impact_search_history_topic_searches{topic="ocean"} 4
# HELP impact_search_history_up Whether the last read from the history store succeeded
# TYPE impact_search_history_up gauge
impact_search_history_up 1
`
	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestHistoryCollector_StoreError(t *testing.T) {
	c := NewHistoryCollector(&fakeCounter{err: errors.New("store down")})

	expected := `
# HELP impact_search_history_up Whether the last read from the history store succeeded
# TYPE impact_search_history_up gauge
impact_search_history_up 0
`
	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "impact_search_history_up"))
}

func TestMetrics_RegisterHistoryCollector(t *testing.T) {
	m := NewMetrics()
	require.NoError(t, m.Register(NewHistoryCollector(&fakeCounter{})))

	// Registering the same descriptors twice is rejected.
	err := m.Register(NewHistoryCollector(&fakeCounter{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monitoring: register collector")
}
