package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rishbot91/todo-project/internal/config"
	"github.com/rishbot91/todo-project/internal/server"
	"github.com/rishbot91/todo-project/internal/store"
	"github.com/rishbot91/todo-project/internal/todo"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	log := mustMakeLogger(cfg.LogLevel)

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Error("cannot open store", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer func() { _ = st.Close() }()

	svc := todo.NewService(st)

	mux := http.NewServeMux()
	server.Register(mux, log, svc, server.Credentials{
		Username: cfg.Auth.Username,
		Password: cfg.Auth.Password,
	}, cfg.HTTP.Timeout)

	srv := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("todo api http server", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
