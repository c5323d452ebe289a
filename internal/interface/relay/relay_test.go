package inboundrelay_test

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/arkade-os/nftbridge/internal/core/application"
	"github.com/arkade-os/nftbridge/internal/core/domain"
	"github.com/arkade-os/nftbridge/internal/core/ports"
	watermillgateway "github.com/arkade-os/nftbridge/internal/infrastructure/gateway/watermill"
	inboundrelay "github.com/arkade-os/nftbridge/internal/interface/relay"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/auth"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/relay"
	"github.com/arkade-os/nftbridge/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	gatewaySigner, _ = auth.NewSignerFromString(strings.Repeat("9a", 32))
	gatewayAddress   = gatewaySigner.Principal()
	principal        = nft.Address{0: 0xa1, 31: 0x01}
	assetX         = nft.Address{0: 0x11, 31: 0x11}
	rawMessage     = []byte{0x01, 0x02, 0x03}
)

type mockedService struct {
	mock.Mock
	calls chan application.InboundCall
}

func (m *mockedService) Initialize(
	ctx context.Context, administrator, gatewayAddress nft.Address,
) (*domain.Config, errors.Error) {
	panic("not implemented")
}

func (m *mockedService) Issue(
	ctx context.Context, req application.IssueRequest,
) (*domain.OriginRecord, errors.Error) {
	panic("not implemented")
}

func (m *mockedService) SendOut(
	ctx context.Context, req application.SendOutRequest,
) (*application.SendOutResult, errors.Error) {
	panic("not implemented")
}

func (m *mockedService) OnInbound(
	ctx context.Context, call application.InboundCall,
) (*application.InboundResult, errors.Error) {
	args := m.Called(ctx, call)
	defer func() { m.calls <- call }()

	var res *application.InboundResult
	if a := args.Get(0); a != nil {
		res = a.(*application.InboundResult)
	}
	var err errors.Error
	if e := args.Get(1); e != nil {
		err = e.(errors.Error)
	}
	return res, err
}

func (m *mockedService) GetOrigin(
	ctx context.Context, tokenId nft.TokenId,
) (*domain.OriginRecord, errors.Error) {
	panic("not implemented")
}

func (m *mockedService) GetConfig(ctx context.Context) (*domain.Config, errors.Error) {
	panic("not implemented")
}

type mockedAlerts struct {
	mock.Mock
}

func (m *mockedAlerts) Publish(ctx context.Context, topic ports.Topic, message any) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}

func TestRelay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, pubsub := startRelay(t, 3)
		svc.On("OnInbound", mock.Anything, mock.Anything).
			Return(&application.InboundResult{Operation: nft.OperationReceiveIn}, nil)

		publishInbound(t, pubsub, hex.EncodeToString(rawMessage))

		call := waitCall(t, svc)
		require.Equal(t, gatewayAddress, call.Gateway)
		require.Equal(t, principal, call.Principal)
		require.Equal(t, assetX, call.AssetAddress)
		require.Equal(t, rawMessage, call.RawMessage)

		requireNoMoreCalls(t, svc)
	})

	t.Run("rejected call is not redelivered", func(t *testing.T) {
		svc, pubsub := startRelay(t, 3)
		svc.On("OnInbound", mock.Anything, mock.Anything).
			Return(nil, errors.INVALID_GATEWAY.New("untrusted gateway"))

		publishInbound(t, pubsub, hex.EncodeToString(rawMessage))

		waitCall(t, svc)
		requireNoMoreCalls(t, svc)
	})

	t.Run("internal failure is redelivered", func(t *testing.T) {
		maxRedeliveries := 2
		svc, pubsub := startRelay(t, maxRedeliveries)
		svc.On("OnInbound", mock.Anything, mock.Anything).
			Return(nil, errors.INTERNAL_ERROR.New("db unavailable"))

		publishInbound(t, pubsub, hex.EncodeToString(rawMessage))

		for range maxRedeliveries + 1 {
			waitCall(t, svc)
		}
		requireNoMoreCalls(t, svc)
	})

	t.Run("dropped call raises an alert", func(t *testing.T) {
		dropped := make(chan ports.InboundCallDroppedAlert, 1)
		alerts := &mockedAlerts{}
		alerts.On("Publish", mock.Anything, ports.InboundCallDropped, mock.Anything).
			Run(func(args mock.Arguments) {
				dropped <- args.Get(2).(ports.InboundCallDroppedAlert)
			}).
			Return(nil)
		svc, pubsub := startRelay(t, 1, inboundrelay.WithAlerts(alerts))
		svc.On("OnInbound", mock.Anything, mock.Anything).
			Return(nil, errors.INTERNAL_ERROR.New("db unavailable"))

		publishInbound(t, pubsub, hex.EncodeToString(rawMessage))

		waitCall(t, svc)
		waitCall(t, svc)
		select {
		case alert := <-dropped:
			require.Equal(t, 2, alert.Attempts)
			require.Contains(t, alert.Reason, "db unavailable")
		case <-time.After(2 * time.Second):
			t.Fatal("dropped call alert not published")
		}
	})

	t.Run("malformed envelope is dropped", func(t *testing.T) {
		svc, pubsub := startRelay(t, 3)

		publishInbound(t, pubsub, "not hex")

		requireNoMoreCalls(t, svc)
		svc.AssertNotCalled(t, "OnInbound", mock.Anything, mock.Anything)
	})

	t.Run("call not signed by its gateway is dropped", func(t *testing.T) {
		impostor, err := auth.NewSignerFromString(strings.Repeat("a1", 32))
		require.NoError(t, err)

		unsigned := relay.InboundCall{
			Gateway:      gatewayAddress,
			Principal:    principal,
			AssetAddress: assetX,
			Message:      hex.EncodeToString(rawMessage),
		}
		forged := unsigned
		require.NoError(t, forged.Sign(impostor))
		forged.Gateway = gatewayAddress

		for _, call := range []relay.InboundCall{unsigned, forged} {
			svc, pubsub := startRelay(t, 3)
			publishCall(t, pubsub, call)

			requireNoMoreCalls(t, svc)
			svc.AssertNotCalled(t, "OnInbound", mock.Anything, mock.Anything)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := inboundrelay.NewRelay(nil, &mockedService{}, 1)
		require.ErrorContains(t, err, "missing subscriber")

		_, err = inboundrelay.NewRelay(watermillgateway.NewGoChannelPubSub(0), nil, 1)
		require.ErrorContains(t, err, "missing app service")
	})
}

func startRelay(
	t *testing.T, maxRedeliveries int, opts ...inboundrelay.Option,
) (*mockedService, message.Publisher) {
	t.Helper()

	pubsub := watermillgateway.NewGoChannelPubSub(10)
	svc := &mockedService{calls: make(chan application.InboundCall, 10)}

	r, err := inboundrelay.NewRelay(pubsub, svc, maxRedeliveries, opts...)
	require.NoError(t, err)
	require.NoError(t, r.Start())

	t.Cleanup(func() {
		//nolint:all
		pubsub.Close()
		r.Stop()
	})
	return svc, pubsub
}

func publishInbound(t *testing.T, publisher message.Publisher, rawMessage string) {
	t.Helper()

	call := relay.InboundCall{
		Principal:    principal,
		AssetAddress: assetX,
		Message:      rawMessage,
	}
	require.NoError(t, call.Sign(gatewaySigner))
	publishCall(t, publisher, call)
}

func publishCall(t *testing.T, publisher message.Publisher, call relay.InboundCall) {
	t.Helper()

	payload, err := call.Serialize()
	require.NoError(t, err)

	err = publisher.Publish(relay.InboundTopic, message.NewMessage(watermill.NewUUID(), payload))
	require.NoError(t, err)
}

func waitCall(t *testing.T, svc *mockedService) application.InboundCall {
	t.Helper()
	select {
	case call := <-svc.calls:
		return call
	case <-time.After(5 * time.Second):
		t.Fatal("inbound call not delivered")
	}
	return application.InboundCall{}
}

func requireNoMoreCalls(t *testing.T, svc *mockedService) {
	t.Helper()
	select {
	case <-svc.calls:
		t.Fatal("unexpected inbound call")
	case <-time.After(200 * time.Millisecond):
	}
}
