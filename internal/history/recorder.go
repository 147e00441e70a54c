// Package history records searches in the background so that the request
// path never waits on the store.
package history

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/monitoring"
	"github.com/sells-group/impact-search/internal/resilience"
	"github.com/sells-group/impact-search/internal/resolver"
	"github.com/sells-group/impact-search/internal/store"
)

// Options tunes a Recorder.
type Options struct {
	BufferSize   int
	WritesPerSec float64
	Retry        resilience.RetryConfig
	Breaker      *resilience.Breaker
	Metrics      *monitoring.Metrics
	FlushTimeout time.Duration
}

// Stats counts what happened to recorded events.
type Stats struct {
	Written int64 `json:"written"`
	Dropped int64 `json:"dropped"`
	Failed  int64 `json:"failed"`
}

// Recorder queues search events and writes them to a store from a single
// goroutine started by Run.
type Recorder struct {
	store        store.Store
	events       chan model.SearchEvent
	limiter      *rate.Limiter
	retry        resilience.RetryConfig
	breaker      *resilience.Breaker
	metrics      *monitoring.Metrics
	flushTimeout time.Duration

	mu     sync.RWMutex
	closed bool

	written atomic.Int64
	dropped atomic.Int64
	failed  atomic.Int64
}

// NewRecorder returns a Recorder writing to st.
func NewRecorder(st store.Store, opts Options) *Recorder {
	if opts.BufferSize <= 0 {
		opts.BufferSize = 256
	}
	limit := rate.Inf
	if opts.WritesPerSec > 0 {
		limit = rate.Limit(opts.WritesPerSec)
	}
	if opts.FlushTimeout <= 0 {
		opts.FlushTimeout = 5 * time.Second
	}
	retry := opts.Retry
	if retry.OnRetry == nil {
		retry.OnRetry = resilience.RetryLogger("record search")
	}

	return &Recorder{
		store:        st,
		events:       make(chan model.SearchEvent, opts.BufferSize),
		limiter:      rate.NewLimiter(limit, 1),
		retry:        retry,
		breaker:      opts.Breaker,
		metrics:      opts.Metrics,
		flushTimeout: opts.FlushTimeout,
	}
}

// Record queues ev without blocking. It reports false when the event was
// dropped because the buffer is full or Run has already returned.
func (r *Recorder) Record(ev model.SearchEvent) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.drop(ev, "recorder stopped")
		return false
	}
	select {
	case r.events <- ev:
		return true
	default:
		r.drop(ev, "buffer full")
		return false
	}
}

func (r *Recorder) drop(ev model.SearchEvent, reason string) {
	r.dropped.Add(1)
	r.metrics.ObserveHistory(monitoring.HistoryDropped)
	zap.L().Debug("history: dropping search event",
		zap.String("reason", reason),
		zap.String("query", ev.Normalized),
	)
}

// close stops Record from queueing. Events queued before it returns are
// still in the channel for flush.
func (r *Recorder) close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Run writes queued events until ctx is cancelled, then stops accepting new
// events, flushes whatever is still buffered and returns nil.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			r.close()
			r.flush()
			return nil
		case ev := <-r.events:
			if err := r.limiter.Wait(ctx); err != nil {
				// Cancelled while throttled.
				r.close()
				r.flush(ev)
				return nil
			}
			r.write(ctx, ev)
		}
	}
}

func (r *Recorder) flush(pending ...model.SearchEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), r.flushTimeout)
	defer cancel()

	for _, ev := range pending {
		r.write(ctx, ev)
	}
	n := len(pending)
	for {
		select {
		case ev := <-r.events:
			r.write(ctx, ev)
			n++
		default:
			if n > 0 {
				zap.L().Info("history: flushed pending search events", zap.Int("count", n))
			}
			return
		}
	}
}

func (r *Recorder) write(ctx context.Context, ev model.SearchEvent) {
	op := func(ctx context.Context) error {
		return resilience.Do(ctx, r.retry, func(ctx context.Context) error {
			return r.store.RecordSearch(ctx, ev)
		})
	}

	var err error
	if r.breaker != nil {
		err = r.breaker.Execute(ctx, op)
	} else {
		err = op(ctx)
	}

	if err != nil {
		r.failed.Add(1)
		r.metrics.ObserveHistory(monitoring.HistoryFailed)
		zap.L().Warn("history: record search failed",
			zap.String("query", ev.Normalized),
			zap.Error(err),
		)
		return
	}
	r.written.Add(1)
	r.metrics.ObserveHistory(monitoring.HistoryWritten)
}

// EventFor builds the history event for one resolved search.
func EventFor(m resolver.Match, f model.Filter, results int) model.SearchEvent {
	return model.SearchEvent{
		ID:          uuid.New().String(),
		Query:       m.Query,
		Normalized:  m.Normalized,
		Topic:       m.Topic,
		Filter:      f,
		ResultCount: results,
		SearchedAt:  time.Now().UTC(),
	}
}

// Stats returns a snapshot of the recorder's counters.
func (r *Recorder) Stats() Stats {
	return Stats{
		Written: r.written.Load(),
		Dropped: r.dropped.Load(),
		Failed:  r.failed.Load(),
	}
}
