package inmemorylivestore

import (
	"context"
	"sync"

	"github.com/arkade-os/nftbridge/internal/core/ports"
)

type tipStore struct {
	lock   *sync.RWMutex
	height uint64
}

func NewTipStore() ports.TipStore {
	return &tipStore{lock: &sync.RWMutex{}}
}

func (s *tipStore) Get(_ context.Context) (uint64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.height, nil
}

func (s *tipStore) Set(_ context.Context, height uint64) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.height = height
	return nil
}

func (s *tipStore) Incr(_ context.Context) (uint64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.height++
	return s.height, nil
}
