package application

import (
	"context"
	goerrors "errors"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/errors"
)

type configStore struct {
	repo domain.ConfigRepository
}

func (s configStore) initialize(
	ctx context.Context, administrator, gatewayAddress nft.Address,
) (*domain.Config, errors.Error) {
	existing, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	if existing != nil {
		return nil, errors.ALREADY_INITIALIZED.New("config already initialized at %s", existing.Address)
	}

	config, err := domain.NewConfig(administrator, gatewayAddress)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}

	if err := s.repo.Add(ctx, *config); err != nil {
		if goerrors.Is(err, domain.ErrConfigExists) {
			return nil, errors.ALREADY_INITIALIZED.New("config already initialized at %s", config.Address)
		}
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	return config, nil
}

func (s configStore) get(ctx context.Context) (*domain.Config, errors.Error) {
	config, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	if config == nil {
		return nil, errors.NOT_INITIALIZED.New("config not initialized")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	return config, nil
}

// nextNonce returns the nonce to use for the next issued token and bumps the
// stored one.
func (s configStore) nextNonce(ctx context.Context) (uint64, errors.Error) {
	nonce, err := s.repo.IncrementNonce(ctx)
	if err != nil {
		if goerrors.Is(err, domain.ErrConfigNotFound) {
			return 0, errors.NOT_INITIALIZED.New("config not initialized")
		}
		return 0, errors.INTERNAL_ERROR.Wrap(err)
	}
	return nonce, nil
}
