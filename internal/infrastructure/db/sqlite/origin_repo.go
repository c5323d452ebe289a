package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/internal/infrastructure/db/sqlite/sqlc/queries"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

type originRepository struct {
	db      *sql.DB
	querier *queries.Queries
}

func NewOriginRepository(config ...interface{}) (domain.OriginRepository, error) {
	db, err := dbFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("cannot open origin repository: %w", err)
	}

	return &originRepository{
		db:      db,
		querier: queries.New(db),
	}, nil
}

func (r *originRepository) Get(
	ctx context.Context, address nft.Address,
) (*domain.OriginRecord, error) {
	row, err := querierFromContext(ctx, r.querier).SelectOrigin(ctx, address.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get origin record %s: %w", address, err)
	}

	return toOriginRecord(row)
}

func (r *originRepository) Add(ctx context.Context, record domain.OriginRecord) error {
	rows, err := querierFromContext(ctx, r.querier).InsertOrigin(ctx, queries.InsertOriginParams{
		Address:        record.Address.String(),
		Bump:           int64(record.Bump),
		TokenID:        record.TokenId.String(),
		AssetAddress:   record.AssetAddress.String(),
		CreationHeight: int64(record.CreationHeight),
		Nonce:          int64(record.Nonce),
		Name:           record.Name,
		Symbol:         record.Symbol,
		Uri:            record.Uri,
		CreatedAt:      record.CreatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to add origin record %s: %w", record.Address, err)
	}
	if rows == 0 {
		return domain.ErrOriginExists
	}
	return nil
}

// Close is a no-op, the shared db is closed by its owner.
func (r *originRepository) Close() {}

func toOriginRecord(row queries.Origin) (*domain.OriginRecord, error) {
	addr, err := nft.NewAddressFromString(row.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid origin address: %w", err)
	}
	tokenId, err := nft.NewTokenIdFromString(row.TokenID)
	if err != nil {
		return nil, err
	}
	asset, err := nft.NewAddressFromString(row.AssetAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid asset address: %w", err)
	}

	return &domain.OriginRecord{
		Address:        *addr,
		Bump:           uint8(row.Bump),
		TokenId:        *tokenId,
		AssetAddress:   *asset,
		CreationHeight: uint64(row.CreationHeight),
		Nonce:          uint64(row.Nonce),
		Name:           row.Name,
		Symbol:         row.Symbol,
		Uri:            row.Uri,
		CreatedAt:      time.Unix(row.CreatedAt, 0),
	}, nil
}
