package content

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/sahaj/pkg/domain"
)

// RenderFunc produces response text for a content key. It receives the full
// merged user data for the turn and must not retain or mutate it.
type RenderFunc func(data map[string]string) (string, error)

// Registry is a flat map of named renderers invoked by key. Every transition
// rule references a key registered here; a miss is a contract violation, not
// a dialogue condition.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]RenderFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]RenderFunc)}
}

// Register adds a renderer to the registry.
// If a renderer with the same key exists, it is overwritten.
func (r *Registry) Register(key string, fn RenderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[key] = fn
}

// RegisterStatic registers a renderer that returns fixed text.
func (r *Registry) RegisterStatic(key, text string) {
	r.Register(key, func(map[string]string) (string, error) {
		return text, nil
	})
}

// Render looks up a renderer by key and invokes it.
// Returns an error wrapping domain.ErrUnknownContentKey if the key is not
// registered.
func (r *Registry) Render(key string, data map[string]string) (string, error) {
	r.mu.RLock()
	fn, ok := r.renderers[key]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownContentKey, key)
	}
	return fn(data)
}

// Keys returns the registered content keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.renderers))
	for k := range r.renderers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
