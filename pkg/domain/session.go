package domain

import "time"

// Session is the per-conversation snapshot. It is exclusively owned by the
// session store; mutation happens only through Apply/Reset under the
// manager's per-session lock.
type Session struct {
	ID        string            `json:"id"`
	State     StateID           `json:"state"`
	UserData  map[string]string `json:"user_data"`
	Context   map[string]string `json:"context"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSession creates a fresh session positioned at the dialogue entry state.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		State:     StateStart,
		UserData:  map[string]string{},
		Context:   map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply sets the state and merges the patches key-by-key (shallow,
// last-write-wins). Nil patches are no-ops.
func (s *Session) Apply(next StateID, dataPatch, contextPatch map[string]string) {
	s.State = next
	for k, v := range dataPatch {
		s.UserData[k] = v
	}
	for k, v := range contextPatch {
		s.Context[k] = v
	}
	s.UpdatedAt = time.Now()
}

// Reset returns the session to its initial values while keeping the id.
// Triggered by the restart global command; sessions are otherwise never
// destroyed by the dialogue itself (eviction is the store's job).
func (s *Session) Reset() {
	s.State = StateStart
	s.UserData = map[string]string{}
	s.Context = map[string]string{}
	s.UpdatedAt = time.Now()
}

// Clone returns a deep copy safe for independent mutation.
func (s *Session) Clone() *Session {
	clone := *s
	clone.UserData = make(map[string]string, len(s.UserData))
	for k, v := range s.UserData {
		clone.UserData[k] = v
	}
	clone.Context = make(map[string]string, len(s.Context))
	for k, v := range s.Context {
		clone.Context[k] = v
	}
	return &clone
}
