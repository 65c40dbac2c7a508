package theme

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// store is a key→value map scoped to one theme. Entries are never evicted;
// the store goes away when its owning theme does.
type store[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	sf      singleflight.Group
}

// Get retrieves a cached value. The ok result distinguishes a cached zero
// value (for example a deliberately empty class name) from a miss.
func (s *store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	return v, ok
}

// Set stores a value under key, overwriting any previous entry.
func (s *store[V]) Set(key string, value V) {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// Compute returns the cached value for key, computing and storing it when
// absent. Concurrent callers for the same key share a single computation;
// the check-then-set sequence is never observed half done.
func (s *store[V]) Compute(key string, fn func() V) V {
	v, _, _ := s.sf.Do(key, func() (any, error) {
		if cached, ok := s.Get(key); ok {
			return cached, nil
		}
		value := fn()
		s.Set(key, value)
		return value, nil
	})
	return v.(V)
}

// Len reports the number of cached entries.
func (s *store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// StyleStore caches resolved style objects by cache key.
type StyleStore struct {
	store[StyleObject]
}

// NewStyleStore creates an empty style store.
func NewStyleStore() *StyleStore {
	return &StyleStore{store[StyleObject]{entries: make(map[string]StyleObject)}}
}

// ClassStore caches rendered class names by cache key. An empty string is a
// valid cached value.
type ClassStore struct {
	store[string]
}

// NewClassStore creates an empty class store.
func NewClassStore() *ClassStore {
	return &ClassStore{store[string]{entries: make(map[string]string)}}
}
