package interceptors

import (
	"context"
	"encoding/hex"

	"github.com/arkade-os/nftbridge/internal/interface/grpc/permissions"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/auth"
	"github.com/arkade-os/nftbridge/pkg/bridge-lib/nft"
	"github.com/arkade-os/nftbridge/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func unarySignatureAuthHandler() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
	) (any, error) {
		ctx, err := CheckSignature(ctx, info.FullMethod, req)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func streamSignatureAuthHandler() grpc.StreamServerInterceptor {
	return func(
		srv any, ss grpc.ServerStream,
		info *grpc.StreamServerInfo, handler grpc.StreamHandler,
	) error {
		// Streams carry no signed body, only whitelisted ones are allowed.
		if _, ok := permissions.Whitelist()[info.FullMethod]; !ok {
			return gRPCError{
				errors.UNAUTHENTICATED.New("%s: streaming method requires auth", info.FullMethod),
			}
		}
		return handler(srv, ss)
	}
}

// CheckSignature verifies that the request was signed by the principal in
// the call headers and returns a context carrying that principal.
func CheckSignature(ctx context.Context, fullMethod string, req any) (context.Context, error) {
	if _, ok := permissions.Whitelist()[fullMethod]; ok {
		return ctx, nil
	}
	if _, ok := permissions.AllPermissionsByMethod()[fullMethod]; !ok {
		return nil, errors.UNAUTHENTICATED.New("%s: unknown permissions required for method", fullMethod)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errors.UNAUTHENTICATED.New("missing request metadata")
	}
	principalHex := firstValue(md, auth.PrincipalHeader)
	sigHex := firstValue(md, auth.SignatureHeader)
	if len(principalHex) <= 0 || len(sigHex) <= 0 {
		return nil, errors.UNAUTHENTICATED.New("missing request signature")
	}

	principal, err := nft.NewAddressFromString(principalHex)
	if err != nil {
		return nil, errors.UNAUTHENTICATED.New("invalid principal: %s", err)
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return nil, errors.UNAUTHENTICATED.New("invalid signature format, must be hex")
	}

	body, err := auth.RequestBody(req)
	if err != nil {
		return nil, errors.INTERNAL_ERROR.Wrap(err)
	}
	if err := auth.VerifyRequest(*principal, fullMethod, body, sig); err != nil {
		return nil, errors.UNAUTHENTICATED.Wrap(err)
	}

	return permissions.WithPrincipal(ctx, *principal), nil
}

func firstValue(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) <= 0 {
		return ""
	}
	return values[0]
}
