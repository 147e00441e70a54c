package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/impact-search/internal/config"
	"github.com/sells-group/impact-search/internal/history"
	"github.com/sells-group/impact-search/internal/monitoring"
	"github.com/sells-group/impact-search/internal/resilience"
	"github.com/sells-group/impact-search/internal/server"
)

const (
	shutdownTimeout  = 15 * time.Second
	breakerThreshold = 5
	breakerCooldown  = 30 * time.Second
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the search API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		res, err := initResolver()
		if err != nil {
			return err
		}

		metrics := monitoring.NewMetrics()
		opts := []server.Option{server.WithMetrics(metrics)}

		var rec *history.Recorder
		if cfg.Store.Driver != config.DriverNone {
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			if err := metrics.Register(monitoring.NewHistoryCollector(st)); err != nil {
				return err
			}

			rec = history.NewRecorder(st, history.Options{
				BufferSize:   cfg.History.BufferSize,
				WritesPerSec: cfg.History.WritesPerSec,
				Retry:        resilience.FromHistoryConfig(cfg.History.RetryAttempts, cfg.History.RetryInitialBackoff),
				Breaker: resilience.NewBreaker(breakerThreshold, breakerCooldown, func(from, to resilience.BreakerState) {
					zap.L().Warn("history store breaker changed state",
						zap.Stringer("from", from),
						zap.Stringer("to", to),
					)
				}),
				Metrics: metrics,
			})
			opts = append(opts, server.WithRecorder(rec), server.WithHistory(st))
		} else {
			zap.L().Info("search history disabled")
		}

		srv := server.NewServer(res, server.Options{
			Port:               cfg.Server.Port,
			RequestTimeout:     time.Duration(cfg.Server.RequestTimeoutSecs) * time.Second,
			RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
			AllowedOrigins:     cfg.Server.AllowedOrigins,
		}, opts...)

		// The recorder stops only after the server has drained.
		recCtx, stopRecorder := context.WithCancel(context.Background())
		defer stopRecorder()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(srv.Start)
		g.Go(func() error {
			<-gctx.Done()
			defer stopRecorder()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		if rec != nil {
			g.Go(func() error {
				err := rec.Run(recCtx)
				s := rec.Stats()
				zap.L().Info("search history recorder stopped",
					zap.Int64("written", s.Written),
					zap.Int64("dropped", s.Dropped),
					zap.Int64("failed", s.Failed),
				)
				return err
			})
		}

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
