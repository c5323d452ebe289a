package handlers

import (
	"context"
	"encoding/hex"

	bridgev1 "github.com/arkade-os/nftbridge/api-spec/protobuf/gen/bridge/v1"
	"github.com/arkade-os/nftbridge/internal/core/application"
	"github.com/arkade-os/nftbridge/internal/core/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type handler struct {
	bridgev1.UnimplementedBridgeServiceServer

	svc application.Service
}

func NewBridgeServiceHandler(svc application.Service) bridgev1.BridgeServiceServer {
	return &handler{svc: svc}
}

func (h *handler) Initialize(
	ctx context.Context, req *bridgev1.InitializeRequest,
) (*bridgev1.InitializeResponse, error) {
	principal, err := parsePrincipal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	administrator, err := parseOptionalAddress("administrator", req.Administrator, principal)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	gateway, err := parseAddress("gateway address", req.GatewayAddress)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	config, svcErr := h.svc.Initialize(ctx, administrator, gateway)
	if svcErr != nil {
		return nil, svcErr
	}

	return &bridgev1.InitializeResponse{Config: configInfo(*config).toProto()}, nil
}

func (h *handler) Issue(
	ctx context.Context, req *bridgev1.IssueRequest,
) (*bridgev1.IssueResponse, error) {
	requester, err := parsePrincipal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	asset, err := parseAddress("asset address", req.AssetAddress)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	record, svcErr := h.svc.Issue(ctx, application.IssueRequest{
		Requester:     requester,
		AssetAddress:  asset,
		Name:          req.Name,
		Symbol:        req.Symbol,
		Uri:           req.Uri,
		ClaimedHeight: req.ClaimedHeight,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	return &bridgev1.IssueResponse{Origin: originInfo(*record).toProto()}, nil
}

func (h *handler) SendOut(
	ctx context.Context, req *bridgev1.SendOutRequest,
) (*bridgev1.SendOutResponse, error) {
	caller, err := parsePrincipal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	tokenId, err := parseTokenId(req.TokenId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	recipient, err := parseForeignAddress("recipient", req.Recipient)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, svcErr := h.svc.SendOut(ctx, application.SendOutRequest{
		Caller:      caller,
		TokenId:     tokenId,
		DestChainId: req.DestChainId,
		Recipient:   recipient,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	return &bridgev1.SendOutResponse{
		SubmissionId: result.SubmissionId,
		Message:      hex.EncodeToString(result.RawMessage),
	}, nil
}

func (h *handler) OnInbound(
	ctx context.Context, req *bridgev1.OnInboundRequest,
) (*bridgev1.OnInboundResponse, error) {
	// The signer of the call is the relaying gateway, the service rejects it
	// unless it's the trusted one.
	gateway, err := parsePrincipal(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	principal, err := parseAddress("principal", req.GetPrincipal())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	asset, err := parseAddress("asset address", req.AssetAddress)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	rawMessage, err := parseRawMessage(req.Message)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, svcErr := h.svc.OnInbound(ctx, application.InboundCall{
		Gateway:      gateway,
		Principal:    principal,
		AssetAddress: asset,
		RawMessage:   rawMessage,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	return &bridgev1.OnInboundResponse{
		Operation: result.Operation.String(),
		TokenId:   result.TokenId.String(),
		Holder:    result.Holder.String(),
	}, nil
}

func (h *handler) GetOrigin(
	ctx context.Context, req *bridgev1.GetOriginRequest,
) (*bridgev1.GetOriginResponse, error) {
	tokenId, err := parseTokenId(req.TokenId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	record, svcErr := h.svc.GetOrigin(ctx, tokenId)
	if svcErr != nil {
		return nil, svcErr
	}

	return &bridgev1.GetOriginResponse{Origin: originInfo(*record).toProto()}, nil
}

func (h *handler) GetConfig(
	ctx context.Context, _ *bridgev1.GetConfigRequest,
) (*bridgev1.GetConfigResponse, error) {
	config, svcErr := h.svc.GetConfig(ctx)
	if svcErr != nil {
		return nil, svcErr
	}

	return &bridgev1.GetConfigResponse{Config: configInfo(*config).toProto()}, nil
}

type configInfo domain.Config

func (c configInfo) toProto() *bridgev1.Config {
	return &bridgev1.Config{
		Address:        c.Address.String(),
		Bump:           uint32(c.Bump),
		Administrator:  c.Administrator.String(),
		GatewayAddress: c.GatewayAddress.String(),
		NextNonce:      c.NextNonce,
		CreatedAt:      c.CreatedAt.Unix(),
	}
}

type originInfo domain.OriginRecord

func (o originInfo) toProto() *bridgev1.OriginRecord {
	return &bridgev1.OriginRecord{
		Address:        o.Address.String(),
		Bump:           uint32(o.Bump),
		TokenId:        o.TokenId.String(),
		AssetAddress:   o.AssetAddress.String(),
		CreationHeight: o.CreationHeight,
		Nonce:          o.Nonce,
		Name:           o.Name,
		Symbol:         o.Symbol,
		Uri:            o.Uri,
		CreatedAt:      o.CreatedAt.Unix(),
	}
}
