package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"btc-tracker/internal/slogx"

	"github.com/joho/godotenv"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	r, err := InitializeRunner()
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	cfg := r.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("run config", "pair", cfg.Pair().String(), "data_dir", cfg.DataDir,
		"max_days", cfg.MaxDays, "max_files", cfg.MaxFiles, "export", cfg.ExportFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// partial or total venue failure still exits 0
	if err := r.Run(ctx); err != nil {
		slog.Error("run finished with errors", "error", err)
	}
}
