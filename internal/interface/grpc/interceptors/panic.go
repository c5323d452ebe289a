package interceptors

import (
	"context"
	"runtime/debug"

	"github.com/arkade-os/nftbridge/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

var errPanicked = errors.INTERNAL_ERROR.New("something went wrong")

// recoverPanic turns a panic raised by a handler into an INTERNAL_ERROR.
func recoverPanic(method string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	log.WithFields(log.Fields{
		"method": method,
		"panic":  r,
	}).Errorf("recovered from panic in handler\n%s", debug.Stack())
	*err = errPanicked
}

func unaryPanicRecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
	) (resp any, err error) {
		defer recoverPanic(info.FullMethod, &err)
		return handler(ctx, req)
	}
}

func streamPanicRecoveryInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any, stream grpc.ServerStream,
		info *grpc.StreamServerInfo, handler grpc.StreamHandler,
	) (err error) {
		defer recoverPanic(info.FullMethod, &err)
		return handler(srv, stream)
	}
}
