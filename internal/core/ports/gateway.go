package ports

import (
	"context"

	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
)

type RevertOptions struct {
	RevertAddress nft.Address
	CallOnRevert  bool
	RevertMessage []byte
}

// OutboundCall is what gets handed to the gateway for delivery to another
// chain.
type OutboundCall struct {
	Sender        nft.Address
	Receiver      nft.ForeignAddress
	Amount        uint64
	Message       []byte
	RevertOptions *RevertOptions
}

type Gateway interface {
	// Submit hands the call to the relay and returns the submission id. A nil
	// error means the call was submitted, not that it was delivered.
	Submit(ctx context.Context, call OutboundCall) (string, error)
}
