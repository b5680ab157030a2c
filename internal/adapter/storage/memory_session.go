package storage

import (
	"context"
	"sync"
	"time"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// MemorySessionStore keeps sessions in a map with idle-timeout
// eviction: entries untouched for ttl are dropped by a background
// sweep, which bounds the table for long-running processes. A ttl of
// zero disables eviction.
type MemorySessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]domain.Session
	done     chan struct{}
	once     sync.Once
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]domain.Session),
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweepLoop()
	}
	return s
}

func (s *MemorySessionStore) Get(ctx context.Context, identity string) (domain.Session, bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[identity]
	s.mu.RUnlock()

	if ok && s.expired(sess, time.Now()) {
		s.mu.Lock()
		delete(s.sessions, identity)
		s.mu.Unlock()
		return domain.Session{}, false, nil
	}
	return sess, ok, nil
}

func (s *MemorySessionStore) Put(ctx context.Context, identity string, sess domain.Session) error {
	sess.UpdatedAt = time.Now()
	s.mu.Lock()
	s.sessions[identity] = sess
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, identity string) error {
	s.mu.Lock()
	delete(s.sessions, identity)
	s.mu.Unlock()
	return nil
}

// Close stops the sweep goroutine.
func (s *MemorySessionStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemorySessionStore) expired(sess domain.Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.UpdatedAt) > s.ttl
}

func (s *MemorySessionStore) sweepLoop() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if s.expired(sess, now) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
