package inmemorylivestore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
)

const lockPollInterval = 10 * time.Millisecond

type lockEntry struct {
	token     uint64
	expiresAt time.Time
}

type lockStore struct {
	lock    *sync.Mutex
	entries map[string]lockEntry
	nextTok uint64
}

func NewLockStore() ports.LockStore {
	return &lockStore{
		lock:    &sync.Mutex{},
		entries: make(map[string]lockEntry),
	}
}

func (s *lockStore) Lock(
	ctx context.Context, key string, ttl time.Duration,
) (func(), error) {
	if len(key) <= 0 {
		return nil, fmt.Errorf("missing lock key")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid lock ttl %s", ttl)
	}

	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	for {
		if token, ok := s.tryLock(key, ttl); ok {
			return func() { s.unlock(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ports.ErrLockNotAcquired, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (s *lockStore) tryLock(key string, ttl time.Duration) (uint64, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := time.Now()
	if entry, ok := s.entries[key]; ok && now.Before(entry.expiresAt) {
		return 0, false
	}

	s.nextTok++
	s.entries[key] = lockEntry{token: s.nextTok, expiresAt: now.Add(ttl)}
	return s.nextTok, true
}

// unlock releases the key only if still held by the given token, a holder
// whose ttl expired must not release somebody else's lock.
func (s *lockStore) unlock(key string, token uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if entry, ok := s.entries[key]; ok && entry.token == token {
		delete(s.entries, key)
	}
}
