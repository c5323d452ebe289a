package ports

import (
	"context"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

// AssetLedger is the asset-issuance facility holding count-1 tokens.
type AssetLedger interface {
	Mint(ctx context.Context, asset, holder nft.Address, amount uint64) error
	Burn(ctx context.Context, asset, holder nft.Address, amount uint64) error
	Balance(ctx context.Context, asset, holder nft.Address) (uint64, error)
	// Supply is the number of units of asset held across all holders.
	Supply(ctx context.Context, asset nft.Address) (uint64, error)
}

// MetadataService stores the human readable description of an asset.
type MetadataService interface {
	// Attach creates or replaces the metadata of the given asset.
	Attach(ctx context.Context, asset nft.Address, metadata nft.Metadata) error
	// Get returns nil if no metadata is attached to the asset.
	Get(ctx context.Context, asset nft.Address) (*nft.Metadata, error)
	Detach(ctx context.Context, asset nft.Address) error
}
