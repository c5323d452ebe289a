package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

var ErrOriginExists = errors.New("origin record already exists")

// OriginRecord binds a token id to the asset it was issued for and to its
// descriptive metadata. It is written once when the token is issued.
type OriginRecord struct {
	Address        nft.Address
	Bump           uint8
	TokenId        nft.TokenId
	AssetAddress   nft.Address
	CreationHeight uint64
	Nonce          uint64
	Name           string
	Symbol         string
	Uri            string
	CreatedAt      time.Time
}

// NewOriginRecord derives the token id for the given asset, height and nonce
// and the address where its record must be stored.
func NewOriginRecord(
	asset nft.Address, height, nonce uint64, metadata nft.Metadata,
) (*OriginRecord, error) {
	if asset.IsZero() {
		return nil, fmt.Errorf("missing asset address")
	}
	if err := metadata.Validate(); err != nil {
		return nil, err
	}

	tokenId := nft.DeriveTokenId(asset, height, nonce)
	addr, bump, err := tokenId.OriginAddress()
	if err != nil {
		return nil, fmt.Errorf("failed to derive origin address: %w", err)
	}

	return &OriginRecord{
		Address:        addr,
		Bump:           bump,
		TokenId:        tokenId,
		AssetAddress:   asset,
		CreationHeight: height,
		Nonce:          nonce,
		Name:           metadata.Name,
		Symbol:         metadata.Symbol,
		Uri:            metadata.Uri,
		CreatedAt:      time.Now(),
	}, nil
}

func (r OriginRecord) Metadata() nft.Metadata {
	return nft.NewMetadata(r.Name, r.Symbol, r.Uri)
}

// Validate checks that the record is stored at the address derived from its
// token id and that the token id matches asset, height and nonce.
func (r OriginRecord) Validate() error {
	if !r.TokenId.VerifyOriginAddress(r.Address, r.Bump) {
		return fmt.Errorf("record address %s does not derive from token id", r.Address)
	}
	if nft.DeriveTokenId(r.AssetAddress, r.CreationHeight, r.Nonce) != r.TokenId {
		return fmt.Errorf(
			"token id does not match asset %s at height %d with nonce %d",
			r.AssetAddress, r.CreationHeight, r.Nonce,
		)
	}
	return nil
}
