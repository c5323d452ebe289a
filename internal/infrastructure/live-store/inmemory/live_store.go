package inmemorylivestore

import "github.com/arkade-os/nftbridge/internal/core/ports"

type liveStore struct {
	locks ports.LockStore
	tip   ports.TipStore
}

func NewLiveStore() ports.LiveStore {
	return &liveStore{
		locks: NewLockStore(),
		tip:   NewTipStore(),
	}
}

func (s *liveStore) Locks() ports.LockStore {
	return s.locks
}

func (s *liveStore) Tip() ports.TipStore {
	return s.tip
}
