package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hairizuanbinnoorazman/coffee-shop/cmd/server/handlers"
	"github.com/hairizuanbinnoorazman/coffee-shop/health"
	"github.com/hairizuanbinnoorazman/coffee-shop/logger"
	"github.com/hairizuanbinnoorazman/coffee-shop/metrics"
	"github.com/spf13/cobra"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.AddCommand(serveCmd)
}

// newServer wires the readiness check, router and HTTP server from config.
func newServer(cfg *Config, log logger.Logger) *http.Server {
	readiness := health.NewReadiness(cfg.Health.Component, log)

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(Version, Commit)
	}

	router := handlers.NewRouter(handlers.Routes{
		ReadinessPath: cfg.Health.ReadinessPath,
		LivenessPath:  cfg.Health.LivenessPath,
		MetricsPath:   cfg.Metrics.Path,
		Readiness:     readiness,
		Metrics:       collector,
		Logger:        log,
		Build:         handlers.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate},
	})

	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log := logger.NewLogrusLogger(cfg.Log.Level)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	server := newServer(cfg, log)
	log.Info(ctx, "routes registered", map[string]interface{}{
		"component":       cfg.Health.Component,
		"readiness_path":  cfg.Health.ReadinessPath,
		"liveness_path":   cfg.Health.LivenessPath,
		"metrics_enabled": cfg.Metrics.Enabled,
	})

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	return serveUntilSignal(ctx, server, log, quit, cfg.Server.ShutdownTimeout)
}

// serveUntilSignal runs server until it fails or a signal arrives on quit,
// then shuts it down, waiting at most shutdownTimeout for in-flight requests.
func serveUntilSignal(ctx context.Context, server *http.Server, log logger.Logger, quit <-chan os.Signal, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": server.Addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Error(ctx, "server error", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info(ctx, "shutting down server", map[string]interface{}{
			"signal": sig.String(),
		})
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}
