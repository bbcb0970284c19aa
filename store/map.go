package store

import (
	"context"
	"sync"
)

// MapStore defines a public type used by credcheck APIs.
//
// MapStore is an in-memory Store backed by a plain map. The zero value is not
// usable; construct through [NewMapStore]. All methods are safe for
// concurrent use.
type MapStore struct {
	mu    sync.RWMutex
	props map[string]string
}

// NewMapStore describes the newmapstore operation and its observable behavior.
//
// NewMapStore copies the provided properties, so later mutation of the input
// map does not affect the store. A nil map yields an empty store.
func NewMapStore(props map[string]string) *MapStore {
	copied := make(map[string]string, len(props))
	for k, v := range props {
		copied[k] = v
	}
	return &MapStore{props: copied}
}

// Lookup describes the lookup operation and its observable behavior.
//
// Lookup never fails for a MapStore; the error return exists to satisfy [Store].
// Lookup does not mutate shared global state and can be used concurrently.
func (s *MapStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.props[key]
	return val, ok, nil
}

// Set stores a value under key, replacing any existing value. It exists so a
// caller persisting freshly encoded credentials can write them back through
// the same handle it verifies against.
func (s *MapStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.props[key] = value
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (s *MapStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.props, key)
}
