package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/sahaj/pkg/domain"
)

// entry pairs a stored session with its expiry deadline.
// A zero deadline means the entry never expires.
type entry struct {
	session   *domain.Session
	expiresAt time.Time
}

// Store implements ports.SessionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]entry
	mu   sync.RWMutex

	ttl  time.Duration
	done chan struct{}
	once sync.Once
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets the sliding expiration for sessions. Each Save renews the
// deadline. Zero (the default) disables expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// NewStore creates a new in-memory store. When a TTL is configured a
// background janitor sweeps expired sessions; call Close to stop it.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data: make(map[string]entry),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.ttl > 0 {
		go s.janitor()
	}
	return s
}

func (s *Store) janitor() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.data {
				if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
					delete(s.data, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

func (s *Store) expired(e entry) bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// Save persists the session in memory.
func (s *Store) Save(ctx context.Context, sessionID string, sess *domain.Session) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := sess.Clone()

	var deadline time.Time
	if s.ttl > 0 {
		deadline = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = entry{session: copied, expiresAt: deadline}
	return nil
}

// Load retrieves the session from memory. Expired sessions are reported as
// not found even before the janitor has swept them.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	e, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok || s.expired(e) {
		return nil, domain.ErrSessionNotFound
	}

	// Copy on read so the caller can't mutate store state through the pointer
	return e.session.Clone(), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns the ids of live sessions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id, e := range s.data {
		if s.expired(e) {
			continue
		}
		sessions = append(sessions, id)
	}
	return sessions, nil
}

// Close stops the janitor. Safe to call multiple times.
func (s *Store) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}
