package redislivestore

import (
	"context"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// releaseScript deletes the key only if it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type lockStore struct {
	rdb *redis.Client
}

func NewLockStore(rdb *redis.Client) ports.LockStore {
	return &lockStore{rdb: rdb}
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

	lockKey := fmt.Sprintf("%s:%s", lockKeyPrefix, key)
	token := uuid.NewString()

	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	for {
		ok, err := s.rdb.SetNX(ctx, lockKey, token, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s", ports.ErrLockNotAcquired, ctx.Err())
			}
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() { s.release(lockKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ports.ErrLockNotAcquired, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (s *lockStore) release(lockKey, token string) {
	// The caller's context may be already done here.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, s.rdb, []string{lockKey}, token).Err(); err != nil {
		log.WithError(err).Warnf("failed to release lock %s", lockKey)
	}
}
