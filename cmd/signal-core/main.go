package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/miradorstack/signal-core/internal/api"
	"github.com/miradorstack/signal-core/internal/config"
	"github.com/miradorstack/signal-core/internal/diag"
	"github.com/miradorstack/signal-core/internal/metrics"
	"github.com/miradorstack/signal-core/internal/services"
	"github.com/miradorstack/signal-core/internal/status"
	"github.com/miradorstack/signal-core/internal/utils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	diag.Install(logger)
	logger.Info("starting signal-core", slog.String("address", cfg.Server.Address))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	classifier, err := status.LoadRules(cfg.Rules.Path)
	if err != nil {
		logger.Error("failed to load status rules", slog.String("path", cfg.Rules.Path), slog.Any("error", err))
		os.Exit(1)
	}

	signalService := services.NewSignalService(logger, classifier)

	server, err := api.NewServer(cfg.Server, signalService)
	if err != nil {
		logger.Error("failed to create gRPC server", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Rules.Watch && cfg.Rules.Path != "" {
		go func() {
			err := status.WatchRules(ctx, cfg.Rules.Path, logger, func(c *status.Classifier, err error) {
				metrics.ObserveRuleReload(err)
				signalService.SetClassifier(c)
			})
			if err != nil {
				logger.Warn("status rule watcher stopped", slog.Any("error", err))
			}
		}()
	}

	var metricsServer *http.Server
	if cfg.Server.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:         cfg.Server.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", slog.String("address", cfg.Server.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server exited", slog.Any("error", err))
				stop()
			}
		}()
	}

	go func() {
		if serveErr := server.Serve(); serveErr != nil {
			logger.Error("gRPC server exited", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	server.Stop(context.Background())

	if metricsServer != nil {
		metricsCtx, cancelMetrics := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(metricsCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
		cancelMetrics()
	}

	logger.Info("signal-core stopped")
}
