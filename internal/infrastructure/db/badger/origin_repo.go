package badgerdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
)

type originDTO struct {
	domain.OriginRecord
	UpdatedAt int64
}

type originRepository struct {
	store *badgerhold.Store
}

func NewOriginRepository(config ...interface{}) (domain.OriginRepository, error) {
	store, err := storeFromConfig(config)
	if err != nil {
		return nil, err
	}
	return &originRepository{store}, nil
}

func (r *originRepository) Get(
	ctx context.Context, address nft.Address,
) (*domain.OriginRecord, error) {
	var dto originDTO
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, address.String(), &dto)
	} else {
		err = r.store.Get(address.String(), &dto)
	}
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get origin record %s: %w", address, err)
	}
	return &dto.OriginRecord, nil
}

func (r *originRepository) Add(ctx context.Context, record domain.OriginRecord) error {
	dto := originDTO{OriginRecord: record, UpdatedAt: time.Now().UnixMilli()}
	key := record.Address.String()

	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxInsert(tx, key, dto)
	} else {
		err = r.store.Insert(key, dto)
		if errors.Is(err, badger.ErrConflict) {
			attempts := 1
			for errors.Is(err, badger.ErrConflict) && attempts <= maxRetries {
				time.Sleep(100 * time.Millisecond)
				err = r.store.Insert(key, dto)
				attempts++
			}
		}
	}
	if errors.Is(err, badgerhold.ErrKeyExists) {
		return domain.ErrOriginExists
	}
	if err != nil {
		return fmt.Errorf("failed to add origin record %s: %w", key, err)
	}
	return nil
}

// Close is a no-op, the shared store is closed by its owner.
func (r *originRepository) Close() {}
