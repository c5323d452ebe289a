package application

import (
	"context"
	goerrors "errors"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/errors"
)

type originRegistry struct {
	repo domain.OriginRepository
}

// create stores the record at location, which must be the address derived from
// the record's token id.
func (r originRegistry) create(
	ctx context.Context, location nft.Address, record domain.OriginRecord,
) errors.Error {
	expected, bump, err := record.TokenId.OriginAddress()
	if err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}
	if location != expected {
		return errors.ADDRESS_MISMATCH.New("invalid origin record location").
			WithMetadata(errors.AddressMismatchMetadata{
				Expected: expected.String(),
				Got:      location.String(),
			})
	}
	record.Address, record.Bump = expected, bump

	existing, err := r.repo.Get(ctx, location)
	if err != nil {
		return errors.INTERNAL_ERROR.Wrap(err)
	}
	if existing != nil {
		return alreadyExists(record)
	}

	if err := r.repo.Add(ctx, record); err != nil {
		if goerrors.Is(err, domain.ErrOriginExists) {
			return alreadyExists(record)
		}
		return errors.INTERNAL_ERROR.Wrap(err)
	}
	return nil
}

func (r originRegistry) get(
	ctx context.Context, tokenId nft.TokenId,
) (*domain.OriginRecord, errors.Error) {
	addr, _, err := tokenId.OriginAddress()
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}

	record, err := r.repo.Get(ctx, addr)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	if record == nil {
		return nil, errors.NOT_FOUND.New("origin record not found").
			WithMetadata(errors.OriginMetadata{TokenId: tokenId.String(), Address: addr.String()})
	}

	if record.Address != addr {
		return nil, errors.INVALID_ORIGIN_RECORD.New(
			"stored address %s does not match", record.Address,
		).WithMetadata(errors.OriginMetadata{TokenId: tokenId.String(), Address: addr.String()})
	}
	if record.TokenId != tokenId {
		return nil, errors.INVALID_ORIGIN_RECORD.New(
			"stored token id %s does not match", record.TokenId,
		).WithMetadata(errors.OriginMetadata{TokenId: tokenId.String(), Address: addr.String()})
	}
	if err := record.Validate(); err != nil {
		return nil, errors.INVALID_ORIGIN_RECORD.Wrap(err).
			WithMetadata(errors.OriginMetadata{TokenId: tokenId.String(), Address: addr.String()})
	}
	return record, nil
}

func alreadyExists(record domain.OriginRecord) errors.Error {
	return errors.ALREADY_EXISTS.New("origin record already exists").
		WithMetadata(errors.OriginMetadata{
			TokenId: record.TokenId.String(),
			Address: record.Address.String(),
		})
}
