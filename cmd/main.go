package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/hiresim/internal/adapters/repository"
	"github.com/okian/hiresim/internal/config"
	"github.com/okian/hiresim/internal/sim"
	"github.com/okian/hiresim/pkg/logger"
	"github.com/okian/hiresim/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Screening records from every trial land in one shared store.
	store := repository.NewMemStore()

	runner, err := sim.New(cfg, sim.WithSink(store), sim.WithLogger(loggerInstance))
	if err != nil {
		loggerInstance.Error(ctx, "invalid simulation config", logger.Error(err))
		return
	}

	// Expose Prometheus metrics while the batch runs, if configured.
	var srv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

		srv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			loggerInstance.Info(ctx, "starting metrics server", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				loggerInstance.Error(ctx, "metrics server failed", logger.Error(err))
			}
		}()
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "simulation batch failed", logger.Error(err))
	} else {
		logSummary(ctx, loggerInstance, summary)
		logTopCandidates(ctx, loggerInstance, store, cfg.TopCandidates)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			loggerInstance.Error(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}
}

// logSummary reports the aggregate outcome of the batch.
func logSummary(ctx context.Context, l logger.Logger, s sim.Summary) {
	l.Info(ctx, "simulation batch finished",
		logger.Int("trials", s.Trials),
		logger.Int("hires", s.Hires),
		logger.Float64("hireRate", s.HireRate),
		logger.Float64("avgScreened", s.AvgScreened),
		logger.Float64("avgFinalScore", s.AvgFinalScore),
		logger.Float64("avgTrueSkill", s.AvgTrueSkill),
		logger.Float64("avgInterviewHours", s.AvgHours),
		logger.Float64("avgOffer", s.AvgOffer),
	)
}

// logTopCandidates reports the highest-scoring screening records.
func logTopCandidates(ctx context.Context, l logger.Logger, store repository.Store, n int) {
	if n <= 0 {
		return
	}

	top, err := store.TopN(ctx, n)
	if err != nil {
		l.Warn(ctx, "failed to query top candidates", logger.Error(err))
		return
	}

	for i, rec := range top {
		fields := []logger.Field{
			logger.Int("rank", i+1),
			logger.String("candidate", rec.CandidateID),
			logger.Float64("finalScore", rec.Result.FinalScore),
			logger.Float64("trueSkill", rec.TrueSkill),
			logger.Bool("passed", rec.Result.Pass),
		}
		if rec.Offer != nil {
			fields = append(fields, logger.Float64("offer", rec.Offer.Final))
		}
		l.Info(ctx, "top candidate", fields...)
	}
}
