package application

import (
	"context"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/errors"
)

type Service interface {
	Initialize(
		ctx context.Context, administrator, gatewayAddress nft.Address,
	) (*domain.Config, errors.Error)
	Issue(ctx context.Context, req IssueRequest) (*domain.OriginRecord, errors.Error)
	SendOut(ctx context.Context, req SendOutRequest) (*SendOutResult, errors.Error)
	OnInbound(ctx context.Context, call InboundCall) (*InboundResult, errors.Error)
	GetOrigin(ctx context.Context, tokenId nft.TokenId) (*domain.OriginRecord, errors.Error)
	GetConfig(ctx context.Context) (*domain.Config, errors.Error)
}

type IssueRequest struct {
	Requester     nft.Address
	AssetAddress  nft.Address
	Name          string
	Symbol        string
	Uri           string
	ClaimedHeight uint64
}

type SendOutRequest struct {
	Caller      nft.Address
	TokenId     nft.TokenId
	DestChainId uint64
	Recipient   nft.ForeignAddress
}

type SendOutResult struct {
	SubmissionId string
	Message      nft.CrossChainMessage
	RawMessage   []byte
}

// InboundCall is a message delivered by the gateway on behalf of Principal,
// targeting the local asset AssetAddress. Gateway must be the authenticated
// identity of the caller, never a value taken from the call's payload.
type InboundCall struct {
	Gateway      nft.Address
	Principal    nft.Address
	AssetAddress nft.Address
	RawMessage   []byte
}

type InboundResult struct {
	Operation nft.Operation
	TokenId   nft.TokenId
	Holder    nft.Address
}
