package redislivestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

type tipStore struct {
	rdb          *redis.Client
	numOfRetries int
	retryDelay   time.Duration
}

func NewTipStore(rdb *redis.Client, numOfRetries int) ports.TipStore {
	if numOfRetries <= 0 {
		numOfRetries = 1
	}
	return &tipStore{
		rdb:          rdb,
		numOfRetries: numOfRetries,
		retryDelay:   10 * time.Millisecond,
	}
}

func (s *tipStore) Get(ctx context.Context) (uint64, error) {
	height, err := s.rdb.Get(ctx, tipKey).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get chain tip: %w", err)
	}
	return height, nil
}

func (s *tipStore) Set(ctx context.Context, height uint64) error {
	var err error
	for range s.numOfRetries {
		if err = s.rdb.Watch(ctx, func(tx *redis.Tx) error {
			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, tipKey, height, 0)
				return nil
			})
			return err
		}, tipKey); err == nil {
			return nil
		}
		time.Sleep(s.retryDelay)
	}
	return fmt.Errorf("failed to update chain tip after max number of retries: %v", err)
}

func (s *tipStore) Incr(ctx context.Context) (uint64, error) {
	height, err := s.rdb.Incr(ctx, tipKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment chain tip: %w", err)
	}
	return uint64(height), nil
}
