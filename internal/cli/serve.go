package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	httpapi "github.com/aretw0/sahaj/internal/adapters/http"
	"github.com/aretw0/sahaj/internal/config"
	"github.com/aretw0/sahaj/internal/observability"
	"github.com/aretw0/sahaj/internal/presentation/graph"
)

// ServeOptions configures the HTTP server command.
type ServeOptions struct {
	ConfigPath string
	Addr       string
	Debug      bool
}

// RunServe starts the HTTP API and blocks until interrupted.
func RunServe(opts ServeOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}
	logger := createLogger(cfg.Log, opts.Debug)

	metrics := observability.NewMetrics()
	assistant, closeStore := buildAssistant(cfg, logger, metrics)
	defer func() { _ = closeStore() }()

	handler := httpapi.NewHandler(assistant,
		httpapi.WithMetrics(metrics),
		httpapi.WithGraph(graph.NewExporter(assistant.Engine().Table())),
		httpapi.WithLogger(logger),
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx := NewSignalContext(context.Background())
	defer ctx.Cancel()

	// Keep the active sessions gauge current.
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ids, err := assistant.Sessions(ctx)
				if err != nil {
					logger.Warn("failed to count sessions", "err", err)
					continue
				}
				metrics.ActiveSessions.Set(float64(len(ids)))
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down", "signal", ctx.Signal())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
