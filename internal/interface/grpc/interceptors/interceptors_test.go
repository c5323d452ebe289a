package interceptors

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"

	bridgev1 "github.com/arkade-os/nftbridge/api-spec/protobuf/gen/bridge/v1"
	"github.com/arkade-os/nftbridge/internal/interface/grpc/permissions"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/auth"
	bridgeerrors "github.com/arkade-os/nftbridge/pkg/errors"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newSigner(t *testing.T) *auth.Signer {
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return auth.NewSigner(key)
}

func signedContext(t *testing.T, signer *auth.Signer, method string, req any) context.Context {
	body, err := auth.RequestBody(req)
	require.NoError(t, err)
	sig, err := signer.Sign(method, body)
	require.NoError(t, err)

	md := metadata.Pairs(
		auth.PrincipalHeader, signer.Principal().String(),
		auth.SignatureHeader, hex.EncodeToString(sig),
	)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestCheckSignature(t *testing.T) {
	signer := newSigner(t)
	method := bridgev1.BridgeService_SendOut_FullMethodName
	req := &bridgev1.SendOutRequest{
		TokenId:     "00",
		DestChainId: 1,
		Recipient:   "11",
	}

	t.Run("valid", func(t *testing.T) {
		ctx, err := CheckSignature(signedContext(t, signer, method, req), method, req)
		require.NoError(t, err)

		principal, ok := permissions.PrincipalFromContext(ctx)
		require.True(t, ok)
		require.Equal(t, signer.Principal(), principal)
	})

	t.Run("whitelisted", func(t *testing.T) {
		whitelisted := bridgev1.BridgeService_GetConfig_FullMethodName
		ctx, err := CheckSignature(
			context.Background(), whitelisted, &bridgev1.GetConfigRequest{},
		)
		require.NoError(t, err)

		_, ok := permissions.PrincipalFromContext(ctx)
		require.False(t, ok)
	})

	t.Run("invalid", func(t *testing.T) {
		otherMethod := bridgev1.BridgeService_Issue_FullMethodName
		tamperedReq := &bridgev1.SendOutRequest{
			TokenId:     "00",
			DestChainId: 2,
			Recipient:   "11",
		}

		fixtures := []struct {
			name   string
			ctx    context.Context
			method string
			req    any
		}{
			{
				name:   "unknown method",
				ctx:    signedContext(t, signer, "/unknown/Method", req),
				method: "/unknown/Method",
				req:    req,
			},
			{
				name:   "missing metadata",
				ctx:    context.Background(),
				method: method,
				req:    req,
			},
			{
				name: "missing signature",
				ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs(
					auth.PrincipalHeader, signer.Principal().String(),
				)),
				method: method,
				req:    req,
			},
			{
				name: "invalid signature format",
				ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs(
					auth.PrincipalHeader, signer.Principal().String(),
					auth.SignatureHeader, "not hex",
				)),
				method: method,
				req:    req,
			},
			{
				name:   "tampered request",
				ctx:    signedContext(t, signer, method, req),
				method: method,
				req:    tamperedReq,
			},
			{
				name:   "signed for another method",
				ctx:    signedContext(t, signer, otherMethod, req),
				method: method,
				req:    req,
			},
		}

		for _, f := range fixtures {
			t.Run(f.name, func(t *testing.T) {
				ctx, err := CheckSignature(f.ctx, f.method, f.req)
				require.Error(t, err)
				require.Nil(t, ctx)
				require.True(t, bridgeerrors.UNAUTHENTICATED.Is(err))
			})
		}
	})

	t.Run("impersonation", func(t *testing.T) {
		other := newSigner(t)
		body, err := auth.RequestBody(req)
		require.NoError(t, err)
		sig, err := other.Sign(method, body)
		require.NoError(t, err)

		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
			auth.PrincipalHeader, signer.Principal().String(),
			auth.SignatureHeader, hex.EncodeToString(sig),
		))
		_, err = CheckSignature(ctx, method, req)
		require.True(t, bridgeerrors.UNAUTHENTICATED.Is(err))
	})
}

func TestErrorConverter(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: bridgev1.BridgeService_Issue_FullMethodName}

	t.Run("typed error", func(t *testing.T) {
		handler := func(context.Context, any) (any, error) {
			return nil, bridgeerrors.STALE_HEIGHT.New("claimed height is out of range").
				WithMetadata(bridgeerrors.StaleHeightMetadata{})
		}

		resp, err := errorConverter(context.Background(), nil, info, handler)
		require.Nil(t, resp)

		st, ok := status.FromError(err)
		require.True(t, ok)
		require.Equal(t, codes.FailedPrecondition, st.Code())
		require.Contains(t, st.Message(), "claimed height is out of range")

		require.Len(t, st.Details(), 1)
		details, ok := st.Details()[0].(*bridgev1.ErrorDetails)
		require.True(t, ok)
		require.Equal(t, int32(bridgeerrors.STALE_HEIGHT.Code), details.GetCode())
		require.Equal(t, bridgeerrors.STALE_HEIGHT.Name, details.GetName())
		require.Equal(t, "0", details.GetMetadata()["current_height"])
	})

	t.Run("plain error", func(t *testing.T) {
		plainErr := status.Error(codes.InvalidArgument, "missing token id")
		handler := func(context.Context, any) (any, error) {
			return nil, plainErr
		}

		_, err := errorConverter(context.Background(), nil, info, handler)
		require.Equal(t, plainErr, err)
	})

	t.Run("success", func(t *testing.T) {
		handler := func(context.Context, any) (any, error) {
			return "ok", nil
		}

		resp, err := errorConverter(context.Background(), nil, info, handler)
		require.NoError(t, err)
		require.Equal(t, "ok", resp)
	})
}

func TestErrorDetails(t *testing.T) {
	err := bridgeerrors.UNAUTHORIZED_SENDER.New("sender is not the origin").
		WithMetadata(bridgeerrors.UnauthorizedSenderMetadata{})

	details := errorDetails(err)
	require.Equal(t, int32(bridgeerrors.UNAUTHORIZED_SENDER.Code), details.Code)
	require.Equal(t, bridgeerrors.UNAUTHORIZED_SENDER.Name, details.Name)
	require.Equal(t, err.Error(), details.Message)
}

func TestPanicRecovery(t *testing.T) {
	interceptor := unaryPanicRecoveryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: bridgev1.BridgeService_GetConfig_FullMethodName}

	resp, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic(fmt.Errorf("boom"))
	})
	require.Nil(t, resp)
	require.True(t, bridgeerrors.INTERNAL_ERROR.Is(err))
}

func TestStreamSignatureAuth(t *testing.T) {
	interceptor := streamSignatureAuthHandler()
	called := false
	handler := func(any, grpc.ServerStream) error {
		called = true
		return nil
	}

	err := interceptor(nil, nil, &grpc.StreamServerInfo{FullMethod: "/grpc.health.v1.Health/Watch"}, handler)
	require.NoError(t, err)
	require.True(t, called)

	called = false
	err = interceptor(nil, nil, &grpc.StreamServerInfo{FullMethod: "/unknown/Stream"}, handler)
	require.Error(t, err)
	require.False(t, called)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}
