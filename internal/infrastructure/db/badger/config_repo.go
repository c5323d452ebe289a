package badgerdb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
)

const configKey = "config"

type configDTO struct {
	domain.Config
	UpdatedAt int64
}

type configRepository struct {
	store *badgerhold.Store
	lock  sync.Mutex
}

func NewConfigRepository(config ...interface{}) (domain.ConfigRepository, error) {
	store, err := storeFromConfig(config)
	if err != nil {
		return nil, err
	}
	return &configRepository{store: store}, nil
}

func (r *configRepository) Get(ctx context.Context) (*domain.Config, error) {
	dto, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, nil
	}
	return &dto.Config, nil
}

func (r *configRepository) Add(ctx context.Context, config domain.Config) error {
	dto := configDTO{Config: config, UpdatedAt: time.Now().UnixMilli()}

	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxInsert(tx, configKey, dto)
	} else {
		err = r.store.Insert(configKey, dto)
	}
	if errors.Is(err, badgerhold.ErrKeyExists) {
		return domain.ErrConfigExists
	}
	if err != nil {
		return fmt.Errorf("failed to add config: %w", err)
	}
	return nil
}

func (r *configRepository) IncrementNonce(ctx context.Context) (uint64, error) {
	if tx := txFromContext(ctx); tx != nil {
		return r.incrementNonce(ctx, tx)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	var nonce uint64
	err := RunInTx(ctx, r.store, func(ctx context.Context) error {
		var err error
		nonce, err = r.incrementNonce(ctx, txFromContext(ctx))
		return err
	})
	return nonce, err
}

// Close is a no-op, the shared store is closed by its owner.
func (r *configRepository) Close() {}

func (r *configRepository) incrementNonce(ctx context.Context, tx *badger.Txn) (uint64, error) {
	dto, err := r.get(ctx)
	if err != nil {
		return 0, err
	}
	if dto == nil {
		return 0, domain.ErrConfigNotFound
	}

	nonce := dto.NextNonce
	dto.NextNonce++
	dto.UpdatedAt = time.Now().UnixMilli()
	if err := r.store.TxUpdate(tx, configKey, *dto); err != nil {
		return 0, fmt.Errorf("failed to update nonce: %w", err)
	}
	return nonce, nil
}

func (r *configRepository) get(ctx context.Context) (*configDTO, error) {
	var dto configDTO
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, configKey, &dto)
	} else {
		err = r.store.Get(configKey, &dto)
	}
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return &dto, nil
}
