package interceptors

import (
	"context"
	"strings"
	"sync/atomic"

	bridgev1 "github.com/arkade-os/nftbridge/api-spec/protobuf/gen/bridge/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const bridgeServiceNotReadyMsg = "bridge service not ready: chain tip unavailable"

var bridgeServiceMethodPrefix = "/" + bridgev1.BridgeService_ServiceDesc.ServiceName + "/"

// HeightProvider is the chain tip as seen by the readiness check.
type HeightProvider interface {
	CurrentHeight(ctx context.Context) (uint64, error)
}

// ReadinessService gates the state changing bridge methods until the app
// services are running and the chain tip answers.
type ReadinessService struct {
	chainTip   HeightProvider
	appStarted atomic.Bool
}

func NewReadinessService(chainTip HeightProvider) *ReadinessService {
	return &ReadinessService{chainTip: chainTip}
}

func (r *ReadinessService) MarkAppServiceStarted() {
	r.appStarted.Store(true)
}

func (r *ReadinessService) MarkAppServiceStopped() {
	r.appStarted.Store(false)
}

func (r *ReadinessService) Check(ctx context.Context, fullMethod string) error {
	if r == nil || !isProtectedServiceMethod(fullMethod) {
		return nil
	}
	if !r.appStarted.Load() || r.chainTip == nil {
		return status.Error(codes.Unavailable, bridgeServiceNotReadyMsg)
	}
	if _, err := r.chainTip.CurrentHeight(ctx); err != nil {
		return status.Errorf(codes.Unavailable, "%s: %v", bridgeServiceNotReadyMsg, err)
	}
	return nil
}

// Reads and health stay available while the bridge is not ready.
func isProtectedServiceMethod(fullMethod string) bool {
	if !strings.HasPrefix(fullMethod, bridgeServiceMethodPrefix) {
		return false
	}
	switch fullMethod {
	case bridgev1.BridgeService_GetOrigin_FullMethodName,
		bridgev1.BridgeService_GetConfig_FullMethodName:
		return false
	}
	return true
}

func unaryReadinessHandler(readiness *ReadinessService) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
	) (any, error) {
		if err := readiness.Check(ctx, info.FullMethod); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func streamReadinessHandler(readiness *ReadinessService) grpc.StreamServerInterceptor {
	return func(
		srv any, stream grpc.ServerStream,
		info *grpc.StreamServerInfo, handler grpc.StreamHandler,
	) error {
		if err := readiness.Check(stream.Context(), info.FullMethod); err != nil {
			return err
		}
		return handler(srv, stream)
	}
}
