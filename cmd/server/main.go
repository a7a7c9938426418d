package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/composeapps/web-app/internal/platform/config"
	applog "github.com/composeapps/web-app/internal/platform/logging"
	"github.com/composeapps/web-app/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx := context.Background()
	// No listener exists until configuration is valid; LogFatal exits.
	cfg, err := config.Load(ctx)
	if err != nil {
		applog.LogFatal(ctx, "invalid configuration", err)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogWarn(ctx, "unknown log level, keeping default", zap.String("level", cfg.LogLevel))
	}

	app := server.New(cfg, Version)
	srv := app.HTTPServer()

	if err := run(srv, cfg.ShutdownTimeout, app.RootPath()); err != nil {
		applog.LogError(ctx, "server stopped with error", err, zap.String("addr", srv.Addr))
		_ = applog.Sync()
		os.Exit(1)
	}
	applog.LogInfo(ctx, "server exited")
}

// run serves until SIGINT/SIGTERM, then shuts down gracefully within timeout.
func run(srv *http.Server, timeout time.Duration, rootPath string) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("rootPath", rootPath),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return waitAndShutdown(srv, timeout, stop, listenErr)
}

func waitAndShutdown(srv *http.Server, timeout time.Duration, stop <-chan os.Signal, listenErr <-chan error) error {
	select {
	case err := <-listenErr:
		return err
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
		return err
	}
	return nil
}
