package domain

import (
	"context"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

type OriginRepository interface {
	// Get returns nil if nothing is stored at the given address.
	Get(ctx context.Context, address nft.Address) (*OriginRecord, error)
	// Add fails with ErrOriginExists if the address is already populated.
	Add(ctx context.Context, record OriginRecord) error
	Close()
}
