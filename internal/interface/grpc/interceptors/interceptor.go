package interceptors

import (
	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"google.golang.org/grpc"
)

// UnaryInterceptor returns the chain of unary interceptors of the server.
// Metrics wrap the error converter so they observe the final status code.
func UnaryInterceptor(readiness *ReadinessService) grpc.ServerOption {
	return grpc.UnaryInterceptor(
		middleware.ChainUnaryServer(
			unaryMetrics,
			errorConverter,
			unaryPanicRecoveryInterceptor(),
			unaryLogger,
			unaryReadinessHandler(readiness),
			unarySignatureAuthHandler(),
		),
	)
}

// StreamInterceptor returns the chain of stream interceptors of the server.
func StreamInterceptor(readiness *ReadinessService) grpc.ServerOption {
	return grpc.StreamInterceptor(
		middleware.ChainStreamServer(
			streamPanicRecoveryInterceptor(),
			streamLogger,
			streamReadinessHandler(readiness),
			streamSignatureAuthHandler(),
		),
	)
}
