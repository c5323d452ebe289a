package auth

import (
	"context"
	"encoding/hex"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/proto"
)

// RequestBody returns the bytes of req covered by the request signature.
// The encoding is deterministic so that the server can rebuild them from the
// request it decoded.
func RequestBody(req any) ([]byte, error) {
	msg, ok := req.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("request %T is not a protobuf message", req)
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(msg)
}

// WithSigner returns a dial option that signs every call with the given
// signer.
func WithSigner(signer *Signer) grpc.DialOption {
	return grpc.WithChainUnaryInterceptor(UnarySigner(signer))
}

func UnarySigner(signer *Signer) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context, method string, req, reply any,
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption,
	) error {
		body, err := RequestBody(req)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		sig, err := signer.Sign(method, body)
		if err != nil {
			return fmt.Errorf("failed to sign request: %w", err)
		}

		ctx = metadata.AppendToOutgoingContext(
			ctx,
			PrincipalHeader, signer.Principal().String(),
			SignatureHeader, hex.EncodeToString(sig),
		)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
