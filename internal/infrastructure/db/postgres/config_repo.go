package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/internal/infrastructure/db/postgres/sqlc/queries"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

type configRepository struct {
	db      *sql.DB
	querier *queries.Queries
}

func NewConfigRepository(config ...interface{}) (domain.ConfigRepository, error) {
	db, err := dbFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("cannot open config repository: %w", err)
	}

	return &configRepository{
		db:      db,
		querier: queries.New(db),
	}, nil
}

func (r *configRepository) Get(ctx context.Context) (*domain.Config, error) {
	row, err := querierFromContext(ctx, r.querier).SelectConfig(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	return toConfig(row)
}

func (r *configRepository) Add(ctx context.Context, config domain.Config) error {
	rows, err := querierFromContext(ctx, r.querier).InsertConfig(ctx, queries.InsertConfigParams{
		Address:        config.Address.String(),
		Bump:           int32(config.Bump),
		Administrator:  config.Administrator.String(),
		GatewayAddress: config.GatewayAddress.String(),
		NextNonce:      int64(config.NextNonce),
		CreatedAt:      config.CreatedAt.Unix(),
		UpdatedAt:      time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to add config: %w", err)
	}
	if rows == 0 {
		return domain.ErrConfigExists
	}
	return nil
}

func (r *configRepository) IncrementNonce(ctx context.Context) (uint64, error) {
	nonce, err := querierFromContext(ctx, r.querier).IncrementNonce(ctx, time.Now().Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrConfigNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment nonce: %w", err)
	}
	return uint64(nonce), nil
}

// Close is a no-op, the shared db is closed by its owner.
func (r *configRepository) Close() {}

func toConfig(row queries.Config) (*domain.Config, error) {
	addr, err := nft.NewAddressFromString(row.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid config address: %w", err)
	}
	admin, err := nft.NewAddressFromString(row.Administrator)
	if err != nil {
		return nil, fmt.Errorf("invalid administrator: %w", err)
	}
	gateway, err := nft.NewAddressFromString(row.GatewayAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	return &domain.Config{
		Address:        *addr,
		Bump:           uint8(row.Bump),
		Administrator:  *admin,
		GatewayAddress: *gateway,
		NextNonce:      uint64(row.NextNonce),
		CreatedAt:      time.Unix(row.CreatedAt, 0),
	}, nil
}
