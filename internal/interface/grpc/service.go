package grpcservice

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	bridgev1 "github.com/arkade-os/nftbridge/api-spec/protobuf/gen/bridge/v1"
	"github.com/arkade-os/nftbridge/internal/config"
	interfaces "github.com/arkade-os/nftbridge/internal/interface"
	"github.com/arkade-os/nftbridge/internal/interface/grpc/handlers"
	"github.com/arkade-os/nftbridge/internal/interface/grpc/interceptors"
	"github.com/arkade-os/nftbridge/internal/telemetry"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpchealth "google.golang.org/grpc/health/grpc_health_v1"
)

type service struct {
	config       Config
	appConfig    *config.Config
	server       *http.Server
	grpcServer   *grpc.Server
	healthSvc    *health.Server
	readiness    *interceptors.ReadinessService
	appStarted   atomic.Bool
	otelShutdown func(context.Context) error
}

func NewService(svcConfig Config, appConfig *config.Config) (interfaces.Service, error) {
	if err := svcConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service config: %s", err)
	}
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %s", err)
	}

	return &service{
		config:    svcConfig,
		appConfig: appConfig,
		readiness: interceptors.NewReadinessService(appConfig.ChainTip()),
	}, nil
}

func (s *service) Start() error {
	if err := s.newServer(); err != nil {
		return err
	}
	if err := s.startAppServices(); err != nil {
		return err
	}

	if s.config.insecure() {
		// nolint:all
		go s.server.ListenAndServe()
	} else {
		// nolint:all
		go s.server.ListenAndServeTLS("", "")
	}

	s.healthSvc.SetServingStatus("", grpchealth.HealthCheckResponse_SERVING)
	s.healthSvc.SetServingStatus(bridgev1.BridgeService_ServiceDesc.ServiceName, grpchealth.HealthCheckResponse_SERVING)
	log.Infof("started listening at %s", s.config.address())
	return nil
}

func (s *service) Stop() {
	if s.healthSvc != nil {
		s.healthSvc.Shutdown()
	}

	if s.server != nil {
		_ = s.server.Close()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}

	s.stopAppServices()

	if s.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.otelShutdown(ctx); err != nil {
			log.Errorf("failed to shutdown otel: %s", err)
		}
	}
	log.Info("shutdown service")
}

// startAppServices starts the block source before the relay so that inbound
// calls never observe a zero height.
func (s *service) startAppServices() error {
	if !s.appStarted.CompareAndSwap(false, true) {
		return nil
	}

	if err := s.appConfig.ChainTip().Start(); err != nil {
		s.appStarted.Store(false)
		return fmt.Errorf("failed to start chain tip: %w", err)
	}
	log.Info("started chain tip")

	if err := s.appConfig.Relay().Start(); err != nil {
		s.appConfig.ChainTip().Stop()
		s.appStarted.Store(false)
		return fmt.Errorf("failed to start inbound relay: %w", err)
	}

	s.readiness.MarkAppServiceStarted()
	log.Info("bridge services are now ready")
	return nil
}

func (s *service) stopAppServices() {
	if !s.appStarted.CompareAndSwap(true, false) {
		return
	}
	s.readiness.MarkAppServiceStopped()

	s.appConfig.Relay().Stop()
	s.appConfig.ChainTip().Stop()
	if pubsub := s.appConfig.PubSub(); pubsub != nil {
		if err := pubsub.Close(); err != nil {
			log.WithError(err).Warn("failed to close gateway pubsub")
		}
	}
	s.appConfig.RepoManager().Close()
	log.Info("stopped bridge services")
}

func (s *service) newServer() error {
	ctx := context.Background()
	if s.appConfig.OtelCollectorEndpoint != "" {
		pushInterval := time.Duration(s.appConfig.OtelPushInterval) * time.Second
		otelShutdown, err := telemetry.InitOtelSDK(
			ctx, s.appConfig.OtelCollectorEndpoint, pushInterval,
		)
		if err != nil {
			return err
		}
		s.otelShutdown = otelShutdown
	}

	tlsConfig, err := s.config.tlsConfig()
	if err != nil {
		return err
	}

	otelHandler := otelgrpc.NewServerHandler(
		otelgrpc.WithTracerProvider(otel.GetTracerProvider()),
	)

	grpcServer := grpc.NewServer(
		interceptors.UnaryInterceptor(s.readiness),
		interceptors.StreamInterceptor(s.readiness),
		grpc.StatsHandler(otelHandler),
	)

	appSvc, err := s.appConfig.AppService()
	if err != nil {
		return fmt.Errorf("failed to create app service: %w", err)
	}
	bridgev1.RegisterBridgeServiceServer(grpcServer, handlers.NewBridgeServiceHandler(appSvc))

	healthSvc := health.NewServer()
	grpchealth.RegisterHealthServer(grpcServer, healthSvc)

	handler := http.Handler(grpcServer)
	if s.config.insecure() {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	s.grpcServer = grpcServer
	s.healthSvc = healthSvc
	s.server = &http.Server{
		Addr:              s.config.address(),
		Handler:           handler,
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}
