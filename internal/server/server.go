// Package server exposes the resolver over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/monitoring"
	"github.com/sells-group/impact-search/internal/resolver"
)

// Recorder accepts search events for background persistence.
type Recorder interface {
	Record(ev model.SearchEvent) bool
}

// HistoryReader reads aggregated search history.
type HistoryReader interface {
	TopQueries(ctx context.Context, limit int) ([]model.QueryCount, error)
}

// Options configures the HTTP layer.
type Options struct {
	Port               int
	RequestTimeout     time.Duration
	RateLimitPerMinute int
	AllowedOrigins     []string
}

// Option sets an optional dependency on a Server.
type Option func(*Server)

// WithRecorder records every non-empty search through rec.
func WithRecorder(rec Recorder) Option {
	return func(s *Server) { s.recorder = rec }
}

// WithHistory enables the history endpoints.
func WithHistory(h HistoryReader) Option {
	return func(s *Server) { s.history = h }
}

// WithMetrics instruments requests and serves /metrics.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

type Server struct {
	opts     Options
	resolver *resolver.Resolver
	recorder Recorder
	history  HistoryReader
	metrics  *monitoring.Metrics
	server   *http.Server
}

func NewServer(res *resolver.Resolver, opts Options, options ...Option) *Server {
	s := &Server{
		opts:     opts,
		resolver: res,
	}
	for _, o := range options {
		o(s)
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start serves until Shutdown is called. A graceful shutdown returns nil.
func (s *Server) Start() error {
	zap.L().Info("starting server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	zap.L().Info("shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		return eris.Wrap(err, "server: shutdown")
	}
	return nil
}
