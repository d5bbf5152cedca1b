package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eventdesk/admin-ui/config"
	"github.com/eventdesk/admin-ui/internal/obs"
)

// shutdownTimeout is the maximum time to wait for in-flight requests on
// shutdown.
const shutdownTimeout = 10 * time.Second

// Run starts the console and blocks until a shutdown signal arrives or a
// component fails. It runs the HTTP server and the background session
// revalidation loop under one errgroup so either one failing tears down
// the other.
func Run(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) error {
	obs.Init()

	services, err := NewServices(&ServiceDeps{Config: &cfg, Logger: logger})
	if err != nil {
		return err
	}

	handler := BuildHTTPHandler(services, logger)
	server := NewHTTPServer(cfg.HTTP.Addr, handler)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		services.Session.RunRevalidation(gctx, cfg.Auth.RevalidateInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
