package ttlstore

import (
	"sync"
	"time"
)

// Store is a keyed string store with per-entry expiry. Expiry is checked on
// read, so entries stay correct even if the janitor has not run yet. It backs
// the "sent today" markers for the reminder jobs and short-lived verification
// codes.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type entry struct {
	value     string
	expiresAt time.Time
}

// New creates a Store and starts a background janitor that drops expired
// entries every cleanupInterval. Call Close when done.
func New(cleanupInterval time.Duration) *Store {
	s := &Store{
		entries: make(map[string]entry),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go s.janitor(cleanupInterval)
	return s
}

// newWithClock is used by tests to pin time. No janitor is started.
func newWithClock(now func() time.Time) *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     now,
		done:    make(chan struct{}),
	}
}

// Set stores value under key for ttl.
func (s *Store) Set(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
}

// Get returns the value for key. An expired entry reads as absent and is
// removed.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return e.value, true
}

// Has reports whether key holds an unexpired entry.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Delete removes key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Close stops the janitor.
func (s *Store) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
