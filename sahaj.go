package sahaj

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/sahaj/internal/logging"
	"github.com/aretw0/sahaj/internal/observability"
	"github.com/aretw0/sahaj/pkg/adapters/memory"
	"github.com/aretw0/sahaj/pkg/content"
	"github.com/aretw0/sahaj/pkg/domain"
	"github.com/aretw0/sahaj/pkg/engine"
	"github.com/aretw0/sahaj/pkg/ports"
	"github.com/aretw0/sahaj/pkg/session"
)

// Assistant is the high-level entry point for the filing dialogue. It wires
// the transition engine, the content provider and the session layer behind a
// single Process call, and is safe for concurrent use.
type Assistant struct {
	engine   *engine.Engine
	provider ports.ContentProvider
	manager  *session.Manager
	store    ports.SessionStore
	locker   ports.DistributedLocker
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Assistant.
type Option func(*Assistant)

// WithStore injects a session store. Defaults to the in-memory store.
func WithStore(store ports.SessionStore) Option {
	return func(a *Assistant) {
		a.store = store
	}
}

// WithContentProvider replaces the built-in ITR content provider.
func WithContentProvider(provider ports.ContentProvider) Option {
	return func(a *Assistant) {
		a.provider = provider
	}
}

// WithLocker enables distributed locking for multi-replica deployments.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(a *Assistant) {
		a.locker = locker
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(a *Assistant) {
		a.metrics = metrics
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) {
		a.logger = logger
	}
}

// New initializes an Assistant with the built-in dialogue table.
func New(opts ...Option) *Assistant {
	a := &Assistant{
		engine: engine.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.store == nil {
		a.store = memory.NewStore()
	}
	if a.provider == nil {
		a.provider = content.NewITRProvider()
	}
	if a.logger == nil {
		a.logger = logging.NewNop()
	}

	managerOpts := []session.Option{session.WithLogger(a.logger)}
	if a.locker != nil {
		managerOpts = append(managerOpts, session.WithLocker(a.locker))
	}
	a.manager = session.NewManager(a.store, managerOpts...)

	return a
}

// Process runs one dialogue turn: it loads (or starts) the session, resolves
// the transition for the message, renders the response and persists the new
// state. Turns for the same session id are serialized; an unknown message
// never fails, it re-prompts in the current state.
func (a *Assistant) Process(ctx context.Context, sessionID, message string) (domain.Reply, error) {
	var reply domain.Reply

	err := a.manager.WithLock(ctx, sessionID, func(ctx context.Context) error {
		sess, err := a.loadOrStart(ctx, sessionID)
		if err != nil {
			return err
		}

		from := sess.State
		outcome := a.engine.Evaluate(sess.State, sess.UserData, message)

		text, err := a.provider.Render(outcome.ContentKey, outcome.ContentData)
		if err != nil {
			// A missing content key is a wiring bug. Fail the turn before
			// touching the session so the state stays consistent.
			return fmt.Errorf("render %q: %w", outcome.ContentKey, err)
		}

		if outcome.Reset {
			sess.Reset()
		} else {
			sess.Apply(outcome.Next, outcome.DataPatch, outcome.ContextPatch)
		}

		if err := a.store.Save(ctx, sessionID, sess); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		a.observe(from, outcome)
		a.logger.Debug("turn processed",
			"session_id", sessionID,
			"from", string(from),
			"to", string(sess.State),
			"fallback", outcome.Fallback,
			"command", outcome.GlobalCommand,
		)

		reply = domain.Reply{
			Text:    text,
			Options: outcome.Options,
			State:   sess.State,
		}
		return nil
	})

	return reply, err
}

// loadOrStart is the unlocked variant used inside Process, which already
// holds the session lock. Unlike Manager.LoadOrStart it does not persist a
// fresh session: nothing may be saved until the turn's content has rendered,
// so a failed turn leaves no trace.
func (a *Assistant) loadOrStart(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := a.store.Load(ctx, sessionID)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return domain.NewSession(sessionID), nil
}

// Session returns the persisted session for inspection.
func (a *Assistant) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	return a.manager.Load(ctx, sessionID)
}

// ResetSession deletes the session; the next Process starts from the top.
func (a *Assistant) ResetSession(ctx context.Context, sessionID string) error {
	return a.manager.Delete(ctx, sessionID)
}

// Sessions lists the ids of live sessions.
func (a *Assistant) Sessions(ctx context.Context) ([]string, error) {
	return a.manager.List(ctx)
}

// Engine exposes the transition engine for introspection (graph export).
func (a *Assistant) Engine() *engine.Engine {
	return a.engine
}

// Metrics returns the configured metrics, or nil.
func (a *Assistant) Metrics() *observability.Metrics {
	return a.metrics
}

func (a *Assistant) observe(from domain.StateID, outcome domain.Outcome) {
	if a.metrics == nil {
		return
	}

	a.metrics.Turns.Inc()
	if outcome.Fallback {
		a.metrics.Fallbacks.WithLabelValues(string(from)).Inc()
	}
	if outcome.GlobalCommand != "" {
		a.metrics.GlobalCommands.WithLabelValues(outcome.GlobalCommand).Inc()
	}
	if outcome.Next != from {
		a.metrics.Transitions.WithLabelValues(string(from), string(outcome.Next)).Inc()
	}
}
