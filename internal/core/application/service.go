package application

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultMaxPassHeight is how many blocks a claimed issuance height may lag
	// behind the current tip.
	DefaultMaxPassHeight uint64 = 150

	issueLockKey      = "lock:issue"
	initializeLockKey = "lock:initialize"
	lockTTL           = 30 * time.Second

	// every bridged token has a supply of exactly one unit.
	tokenAmount uint64 = 1
)

type service struct {
	repoManager ports.RepoManager
	liveStore   ports.LiveStore
	chainTip    ports.ChainTip
	ledger      ports.AssetLedger
	metadata    ports.MetadataService
	gateway     ports.Gateway
	alerts      ports.Alerts

	configs  configStore
	registry originRegistry

	maxPassHeight uint64
}

func NewService(
	repoManager ports.RepoManager,
	liveStore ports.LiveStore,
	chainTip ports.ChainTip,
	ledger ports.AssetLedger,
	metadata ports.MetadataService,
	gateway ports.Gateway,
	maxPassHeight uint64,
	opts ...ServiceOption,
) (Service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if liveStore == nil {
		return nil, fmt.Errorf("missing live store")
	}
	if chainTip == nil {
		return nil, fmt.Errorf("missing chain tip")
	}
	if ledger == nil {
		return nil, fmt.Errorf("missing asset ledger")
	}
	if metadata == nil {
		return nil, fmt.Errorf("missing metadata service")
	}
	if gateway == nil {
		return nil, fmt.Errorf("missing gateway")
	}
	if maxPassHeight == 0 {
		maxPassHeight = DefaultMaxPassHeight
	}

	svc := &service{
		repoManager:   repoManager,
		liveStore:     liveStore,
		chainTip:      chainTip,
		ledger:        ledger,
		metadata:      metadata,
		gateway:       gateway,
		configs:       configStore{repoManager.Config()},
		registry:      originRegistry{repoManager.Origins()},
		maxPassHeight: maxPassHeight,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) Initialize(
	ctx context.Context, administrator, gatewayAddress nft.Address,
) (*domain.Config, errors.Error) {
	unlock, err := s.liveStore.Locks().Lock(ctx, initializeLockKey, lockTTL)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to acquire lock: %w", err))
	}
	defer unlock()

	config, cerr := s.configs.initialize(ctx, administrator, gatewayAddress)
	if cerr != nil {
		return nil, cerr
	}

	log.WithField("address", config.Address.String()).
		WithField("gateway", config.GatewayAddress.String()).
		Info("bridge config initialized")
	return config, nil
}

func (s *service) Issue(
	ctx context.Context, req IssueRequest,
) (*domain.OriginRecord, errors.Error) {
	if req.Requester.IsZero() {
		return nil, errors.INTERNAL_ERROR.New("missing requester")
	}
	if req.AssetAddress.IsZero() {
		return nil, errors.INTERNAL_ERROR.New("missing asset address")
	}
	metadata := nft.NewMetadata(req.Name, req.Symbol, req.Uri)
	if err := validateMetadata(metadata); err != nil {
		return nil, err
	}

	unlock, err := s.liveStore.Locks().Lock(ctx, issueLockKey, lockTTL)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to acquire lock: %w", err))
	}
	defer unlock()

	currentHeight, err := s.chainTip.CurrentHeight(ctx)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to get chain tip: %w", err))
	}
	if err := checkFreshness(req.ClaimedHeight, currentHeight, s.maxPassHeight); err != nil {
		return nil, err
	}

	var record *domain.OriginRecord
	effects := &issueEffects{ledger: s.ledger, metadata: s.metadata}

	txErr := s.repoManager.RunInTx(ctx, func(ctx context.Context) error {
		// The db may run this more than once on write conflicts.
		effects.revert(ctx)

		nonce, err := s.configs.nextNonce(ctx)
		if err != nil {
			return err
		}

		r, rerr := domain.NewOriginRecord(req.AssetAddress, req.ClaimedHeight, nonce, metadata)
		if rerr != nil {
			return errors.INTERNAL_ERROR.Wrap(rerr)
		}

		if err := effects.mint(ctx, req.AssetAddress, req.Requester); err != nil {
			return err
		}
		if err := effects.attach(ctx, req.AssetAddress, metadata); err != nil {
			return err
		}
		if err := s.registry.create(ctx, r.Address, *r); err != nil {
			return err
		}

		record = r
		return nil
	})
	if txErr != nil {
		effects.revert(ctx)
		return nil, toError(txErr)
	}

	log.WithField("token_id", record.TokenId.String()).
		WithField("asset", record.AssetAddress.String()).
		WithField("nonce", record.Nonce).
		Infof("issued token to %s", req.Requester)

	s.sendTokenIssuedAlert(*record, req.Requester)
	return record, nil
}

func (s *service) SendOut(
	ctx context.Context, req SendOutRequest,
) (*SendOutResult, errors.Error) {
	if req.Caller.IsZero() {
		return nil, errors.INTERNAL_ERROR.New("missing caller")
	}
	if _, err := s.configs.get(ctx); err != nil {
		return nil, err
	}

	record, err := s.registry.get(ctx, req.TokenId)
	if err != nil {
		return nil, err
	}

	msg := nft.CrossChainMessage{
		AssetAddress: record.AssetAddress,
		TokenId:      record.TokenId,
		Sender:       req.Caller,
		Recipient:    req.Recipient,
		DestChainId:  req.DestChainId,
		Operation:    nft.OperationTransferOut,
	}
	raw, serr := msg.Serialize()
	if serr != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(serr)
	}

	submissionId, serr := s.gateway.Submit(ctx, ports.OutboundCall{
		Sender:        req.Caller,
		Receiver:      req.Recipient,
		Amount:        tokenAmount,
		Message:       raw,
		RevertOptions: nil,
	})
	if serr != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to submit message: %w", serr))
	}

	// The local unit is neither burned nor locked here, it stays spendable
	// until the inbound TransferOut burns it.
	log.WithField("token_id", record.TokenId.String()).
		WithField("sender", req.Caller.String()).
		WithField("recipient", req.Recipient.String()).
		WithField("dest_chain_id", req.DestChainId).
		WithField("submission_id", submissionId).
		Warn("token sent out while still held locally")
	s.sendTokenSentOutAlert(submissionId, msg)

	return &SendOutResult{
		SubmissionId: submissionId,
		Message:      msg,
		RawMessage:   raw,
	}, nil
}

func (s *service) OnInbound(
	ctx context.Context, call InboundCall,
) (*InboundResult, errors.Error) {
	config, err := s.configs.get(ctx)
	if err != nil {
		return nil, err
	}
	if call.Gateway != config.GatewayAddress {
		return nil, errors.INVALID_GATEWAY.New("caller is not the trusted gateway").
			WithMetadata(errors.InvalidGatewayMetadata{
				Expected: config.GatewayAddress.String(),
				Got:      call.Gateway.String(),
			})
	}

	msg, derr := nft.NewCrossChainMessageFromBytes(call.RawMessage)
	if derr != nil {
		return nil, errors.INVALID_MESSAGE.Wrap(derr).
			WithMetadata(errors.InvalidMessageMetadata{Message: fmt.Sprintf("%x", call.RawMessage)})
	}
	if msg.AssetAddress != call.AssetAddress {
		return nil, assetMismatch(call.AssetAddress, msg.AssetAddress)
	}

	record, err := s.registry.get(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	if record.AssetAddress != msg.AssetAddress {
		return nil, assetMismatch(record.AssetAddress, msg.AssetAddress)
	}

	handler := &inboundHandler{
		ctx:       ctx,
		principal: call.Principal,
		record:    *record,
		ledger:    s.ledger,
		metadata:  s.metadata,
	}
	if err := msg.Dispatch(handler); err != nil {
		return nil, toError(err)
	}

	log.WithField("token_id", msg.TokenId.String()).
		WithField("operation", msg.Operation.String()).
		Infof("processed inbound message for %s", call.Principal)

	return &InboundResult{
		Operation: msg.Operation,
		TokenId:   msg.TokenId,
		Holder:    call.Principal,
	}, nil
}

func (s *service) GetOrigin(
	ctx context.Context, tokenId nft.TokenId,
) (*domain.OriginRecord, errors.Error) {
	return s.registry.get(ctx, tokenId)
}

func (s *service) GetConfig(ctx context.Context) (*domain.Config, errors.Error) {
	return s.configs.get(ctx)
}

// inboundHandler applies a decoded inbound message on behalf of principal.
type inboundHandler struct {
	ctx       context.Context
	principal nft.Address
	record    domain.OriginRecord
	ledger    ports.AssetLedger
	metadata  ports.MetadataService
}

func (h *inboundHandler) OnTransferOut(msg nft.CrossChainMessage) error {
	if msg.Sender != h.principal {
		return errors.UNAUTHORIZED_SENDER.New("sender does not match principal").
			WithMetadata(errors.UnauthorizedSenderMetadata{
				Sender:    msg.Sender.String(),
				Principal: h.principal.String(),
			})
	}
	if err := h.ledger.Burn(h.ctx, msg.AssetAddress, h.principal, tokenAmount); err != nil {
		return errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to burn token: %w", err))
	}
	return nil
}

// OnReceiveIn mints the unit back only if no unit of the asset is live, so
// that a redelivered message can't mint twice or overwrite the metadata.
func (h *inboundHandler) OnReceiveIn(msg nft.CrossChainMessage) error {
	supply, err := h.ledger.Supply(h.ctx, msg.AssetAddress)
	if err != nil {
		return errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to get supply: %w", err))
	}
	if supply > 0 {
		return errors.TOKEN_ALREADY_LIVE.New("token %s is already live", msg.TokenId).
			WithMetadata(errors.TokenLiveMetadata{
				TokenId: msg.TokenId.String(),
				Asset:   msg.AssetAddress.String(),
				Supply:  supply,
			})
	}

	if err := h.ledger.Mint(h.ctx, msg.AssetAddress, h.principal, tokenAmount); err != nil {
		return errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to mint token: %w", err))
	}
	if err := h.metadata.Attach(h.ctx, msg.AssetAddress, h.record.Metadata()); err != nil {
		if berr := h.ledger.Burn(h.ctx, msg.AssetAddress, h.principal, tokenAmount); berr != nil {
			log.WithError(berr).Warnf("failed to revert mint of %s", msg.AssetAddress)
		}
		return errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to attach metadata: %w", err))
	}
	return nil
}

// issueEffects tracks what Issue did outside of the db so that it can be
// undone if the issuance is aborted.
type issueEffects struct {
	ledger   ports.AssetLedger
	metadata ports.MetadataService

	minted       bool
	mintedAsset  nft.Address
	mintedHolder nft.Address

	attached         bool
	attachedAsset    nft.Address
	previousMetadata *nft.Metadata
}

func (e *issueEffects) mint(ctx context.Context, asset, holder nft.Address) errors.Error {
	if err := e.ledger.Mint(ctx, asset, holder, tokenAmount); err != nil {
		return errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to mint token: %w", err))
	}
	e.minted, e.mintedAsset, e.mintedHolder = true, asset, holder
	return nil
}

func (e *issueEffects) attach(
	ctx context.Context, asset nft.Address, metadata nft.Metadata,
) errors.Error {
	previous, err := e.metadata.Get(ctx, asset)
	if err != nil {
		return errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to get metadata: %w", err))
	}
	if err := e.metadata.Attach(ctx, asset, metadata); err != nil {
		return errors.INTERNAL_ERROR.Wrap(fmt.Errorf("failed to attach metadata: %w", err))
	}
	e.attached, e.attachedAsset, e.previousMetadata = true, asset, previous
	return nil
}

func (e *issueEffects) revert(ctx context.Context) {
	if e.attached {
		var err error
		if e.previousMetadata != nil {
			err = e.metadata.Attach(ctx, e.attachedAsset, *e.previousMetadata)
		} else {
			err = e.metadata.Detach(ctx, e.attachedAsset)
		}
		if err != nil {
			log.WithError(err).Warnf("failed to revert metadata of %s", e.attachedAsset)
		}
		e.attached, e.previousMetadata = false, nil
	}
	if e.minted {
		if err := e.ledger.Burn(ctx, e.mintedAsset, e.mintedHolder, tokenAmount); err != nil {
			log.WithError(err).Warnf("failed to revert mint of %s", e.mintedAsset)
		}
		e.minted = false
	}
}

// checkFreshness accepts heights in [current - maxPassHeight, current].
func checkFreshness(claimed, current, maxPassHeight uint64) errors.Error {
	var lowest uint64
	if current > maxPassHeight {
		lowest = current - maxPassHeight
	}
	if claimed >= lowest && claimed <= current {
		return nil
	}
	return errors.STALE_HEIGHT.New("claimed height %d out of window", claimed).
		WithMetadata(errors.StaleHeightMetadata{
			ClaimedHeight: claimed,
			CurrentHeight: current,
			MaxPassHeight: maxPassHeight,
		})
}

func validateMetadata(metadata nft.Metadata) errors.Error {
	err := metadata.Validate()
	if err == nil {
		return nil
	}
	var fieldErr *nft.FieldError
	if goerrors.As(err, &fieldErr) {
		return errors.INVALID_METADATA.Wrap(err).WithMetadata(errors.InvalidMetadataMetadata{
			Field:  fieldErr.Field,
			Length: fieldErr.Length,
			Max:    fieldErr.Max,
		})
	}
	return errors.INVALID_METADATA.Wrap(err)
}

func assetMismatch(expected, got nft.Address) errors.Error {
	return errors.ASSET_MISMATCH.New("message asset does not match").
		WithMetadata(errors.AssetMismatchMetadata{
			Expected: expected.String(),
			Got:      got.String(),
		})
}

func toError(err error) errors.Error {
	var e errors.Error
	if goerrors.As(err, &e) {
		return e
	}
	return errors.INTERNAL_ERROR.Wrap(err)
}
