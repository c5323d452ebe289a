package redislivestore

import (
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix = "lockStore"
	tipKey        = "tipStore:height"

	lockPollInterval = 10 * time.Millisecond
)

type liveStore struct {
	locks ports.LockStore
	tip   ports.TipStore
}

func NewLiveStore(rdb *redis.Client, numOfRetries int) ports.LiveStore {
	return &liveStore{
		locks: NewLockStore(rdb),
		tip:   NewTipStore(rdb, numOfRetries),
	}
}

func (s *liveStore) Locks() ports.LockStore {
	return s.locks
}

func (s *liveStore) Tip() ports.TipStore {
	return s.tip
}
