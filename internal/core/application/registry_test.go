package application

import (
	"testing"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestOriginRegistry(t *testing.T) {
	newRecord := func(t *testing.T, nonce uint64) domain.OriginRecord {
		record, err := domain.NewOriginRecord(assetX, 100, nonce, testMetadata)
		require.NoError(t, err)
		return *record
	}

	t.Run("create and get", func(t *testing.T) {
		repo := newFakeRepoManager()
		registry := originRegistry{repo.Origins()}
		record := newRecord(t, 1)

		err := registry.create(ctx, record.Address, record)
		require.Nil(t, err)

		got, err := registry.get(ctx, record.TokenId)
		require.Nil(t, err)
		require.Equal(t, record, *got)
	})

	t.Run("double create", func(t *testing.T) {
		repo := newFakeRepoManager()
		registry := originRegistry{repo.Origins()}
		record := newRecord(t, 1)

		err := registry.create(ctx, record.Address, record)
		require.Nil(t, err)

		again := record
		again.Name = "Overwritten"
		err = registry.create(ctx, again.Address, again)
		require.True(t, errors.ALREADY_EXISTS.Is(err))
		require.Equal(t, record.TokenId.String(), err.Metadata()["token_id"])

		got, err := registry.get(ctx, record.TokenId)
		require.Nil(t, err)
		require.Equal(t, record.Name, got.Name)
	})

	t.Run("address mismatch", func(t *testing.T) {
		repo := newFakeRepoManager()
		registry := originRegistry{repo.Origins()}
		record := newRecord(t, 1)
		other := newRecord(t, 2)

		err := registry.create(ctx, other.Address, record)
		require.True(t, errors.ADDRESS_MISMATCH.Is(err))
		require.Equal(t, record.Address.String(), err.Metadata()["expected"])
		require.Empty(t, repo.origins)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newFakeRepoManager()
		registry := originRegistry{repo.Origins()}

		_, err := registry.get(ctx, nft.DeriveTokenId(assetX, 1, 1))
		require.True(t, errors.NOT_FOUND.Is(err))
	})

	t.Run("invalid record", func(t *testing.T) {
		testCases := []struct {
			name   string
			tamper func(r *domain.OriginRecord)
		}{
			{
				name:   "address",
				tamper: func(r *domain.OriginRecord) { r.Address = assetY },
			},
			{
				name:   "token id",
				tamper: func(r *domain.OriginRecord) { r.TokenId = nft.DeriveTokenId(assetY, 1, 1) },
			},
			{
				name:   "asset",
				tamper: func(r *domain.OriginRecord) { r.AssetAddress = assetY },
			},
			{
				name:   "nonce",
				tamper: func(r *domain.OriginRecord) { r.Nonce++ },
			},
			{
				name:   "bump",
				tamper: func(r *domain.OriginRecord) { r.Bump-- },
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				repo := newFakeRepoManager()
				registry := originRegistry{repo.Origins()}
				record := newRecord(t, 1)
				tokenId, location := record.TokenId, record.Address

				tc.tamper(&record)
				repo.origins[location] = record

				_, err := registry.get(ctx, tokenId)
				require.True(t, errors.INVALID_ORIGIN_RECORD.Is(err))
			})
		}
	})
}
