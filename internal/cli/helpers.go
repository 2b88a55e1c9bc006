package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/aretw0/sahaj"
	"github.com/aretw0/sahaj/internal/config"
	"github.com/aretw0/sahaj/internal/logging"
	"github.com/aretw0/sahaj/internal/observability"
	"github.com/aretw0/sahaj/pkg/adapters/memory"
	"github.com/aretw0/sahaj/pkg/adapters/redis"
	"github.com/aretw0/sahaj/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM
// and remembers which signal fired.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger. Debug overrides the
// configured level.
func createLogger(cfg config.LogConfig, debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	level, err := config.ParseLevel(cfg.Level)
	logger := logging.New(level)
	if err != nil {
		logger.Warn("invalid log level, using info", "level", cfg.Level)
	}
	return logger
}

// buildStore selects the session store from config: Redis when enabled,
// otherwise in-memory. The second return value closes the store.
func buildStore(cfg config.Config) (ports.SessionStore, func() error) {
	if cfg.Redis.Enabled {
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := redis.NewFromClient(client,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Session.TTL),
		)
		return store, store.Close
	}

	store := memory.NewStore(memory.WithTTL(cfg.Session.TTL))
	return store, store.Close
}

// buildAssistant wires the assistant from config. metrics may be nil.
func buildAssistant(cfg config.Config, logger *slog.Logger, metrics *observability.Metrics) (*sahaj.Assistant, func() error) {
	store, closeStore := buildStore(cfg)

	opts := []sahaj.Option{
		sahaj.WithStore(store),
		sahaj.WithLogger(logger),
	}
	if metrics != nil {
		opts = append(opts, sahaj.WithMetrics(metrics))
	}

	return sahaj.New(opts...), closeStore
}

// isTerminal reports whether stdout is attached to a TTY.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
