package interceptors

import (
	"context"
	"errors"

	bridgev1 "github.com/arkade-os/nftbridge/api-spec/protobuf/gen/bridge/v1"
	bridgeerrors "github.com/arkade-os/nftbridge/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// gRPCError is a wrapper implementing GRPCStatus method for errors.Error
// the grpc server will use this to return the associated status error.
type gRPCError struct {
	err bridgeerrors.Error
}

func (e gRPCError) Error() string {
	return e.err.Error()
}

func (e gRPCError) GRPCStatus() *status.Status {
	st := status.New(e.err.GrpcCode(), e.err.Error())
	withDetails, err := st.WithDetails(errorDetails(e.err))
	if err != nil {
		log.WithError(err).Warn("failed to attach error details")
		return st
	}
	return withDetails
}

func errorDetails(err bridgeerrors.Error) *bridgev1.ErrorDetails {
	return &bridgev1.ErrorDetails{
		Code:     int32(err.Code()),
		Name:     err.CodeName(),
		Message:  err.Error(),
		Metadata: err.Metadata(),
	}
}

func errorConverter(
	ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		var structuredErr bridgeerrors.Error
		if errors.As(err, &structuredErr) {
			return nil, gRPCError{structuredErr}
		}
	}
	return resp, err
}
