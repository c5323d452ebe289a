package interceptors

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const meterName = "github.com/arkade-os/nftbridge"

var (
	requestCounter     metric.Int64Counter
	requestCounterOnce sync.Once
)

// requests lazily creates the counter so that it binds to the meter provider
// registered at startup.
func requests() metric.Int64Counter {
	requestCounterOnce.Do(func() {
		counter, err := otel.Meter(meterName).Int64Counter(
			"nftbridge.rpc.requests",
			metric.WithDescription("Number of handled bridge rpc calls by method and status code"),
		)
		if err != nil {
			log.WithError(err).Warn("failed to create rpc request counter")
			return
		}
		requestCounter = counter
	})
	return requestCounter
}

func unaryMetrics(
	ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
) (any, error) {
	resp, err := handler(ctx, req)
	if counter := requests(); counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("method", info.FullMethod),
			attribute.String("code", status.Code(err).String()),
		))
	}
	return resp, err
}
