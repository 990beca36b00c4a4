package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/odyssey-erp/backoffice/internal/app"
	"github.com/odyssey-erp/backoffice/internal/devserver"
	"github.com/odyssey-erp/backoffice/internal/observability"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping devapi startup")
		return
	}

	ctx, stop := app.SignalContext(context.Background())
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	store := devserver.NewStore()
	if cfg.DevAPISeed {
		if err := store.SeedDefault(); err != nil {
			logger.Error("seed store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("seeded development data", slog.Any("counts", store.Counts()))
	}

	metrics := observability.NewMetrics()
	router := app.NewRouter(app.RouterParams{
		Logger:  logger,
		Config:  cfg,
		API:     devserver.NewHandler(store, logger),
		Metrics: metrics,
	})

	server := &http.Server{
		Addr:              cfg.DevAPIAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		logger.Info("starting dev api", slog.String("addr", cfg.DevAPIAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
