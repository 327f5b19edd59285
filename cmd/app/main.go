package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LootLedger_Go/internal/appraisal"
	"github.com/osse101/LootLedger_Go/internal/catalog"
	"github.com/osse101/LootLedger_Go/internal/config"
	"github.com/osse101/LootLedger_Go/internal/handler"
	"github.com/osse101/LootLedger_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	cat, err := catalog.NewLoader().Load(cfg.TablesDir)
	if err != nil {
		slog.Error("Failed to load catalog tables", "dir", cfg.TablesDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "items", cat.Size(), "dir", cfg.TablesDir)

	svc, err := appraisal.NewService(cat, cfg.CacheSize)
	if err != nil {
		slog.Error("Failed to create appraisal service", "error", err)
		os.Exit(1)
	}

	srv := server.New(server.Config{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Catalog:     cat,
		Appraiser:   svc,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
