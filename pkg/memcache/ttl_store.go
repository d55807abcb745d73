// Package mem is an in-process key/value store with per-entry expiry.
package mem

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time
}

func NewTTLStore[V any]() *TTLStore[V] {
	return &TTLStore[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

// Set stores value under key. A ttl <= 0 keeps it until deleted.
func (s *TTLStore[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.data[key] = e
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if s.expired(e) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && s.expired(cur) {
			delete(s.data, key) // cleanup expired
		}
		s.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len counts entries, expired ones included until they are read.
func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *TTLStore[V]) expired(e entry[V]) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}
