package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gifttrack/internal/config"
	"gifttrack/internal/db"
	httpx "gifttrack/internal/http"
	"gifttrack/internal/logging"
	"gifttrack/internal/session"
)

func main() {
	logging.Setup()

	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	gate, err := session.NewGate(cfg.SessionSecret, cfg.AppPassword, cfg.Production())
	if err != nil {
		slog.Error("gate init failed", "error", err)
		os.Exit(1)
	}

	r := httpx.NewRouter(cfg, gdb, gate)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
