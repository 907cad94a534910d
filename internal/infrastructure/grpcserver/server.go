// Package grpcserver exposes the standard grpc health service so that
// orchestrators can probe the process without going through HTTP.
package grpcserver

import (
	"context"
	"fmt"
	"net"

	"github.com/dezh-tech/immortal/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service entry reported for the asset gateway.
const ServiceName = "assetgate.v1.AssetGate"

// Checker probes a dependency. A nil error means healthy.
type Checker func(ctx context.Context) error

type Server struct {
	config Config
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

func New(cfg Config) (*Server, error) {
	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.Bind, fmt.Sprint(cfg.Port)))
	if err != nil {
		return nil, err
	}

	s := &Server{
		config: cfg,
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
		lis:    lis,
	}

	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return s, nil
}

// Addr is the bound listener address.
func (s *Server) Addr() string {
	return s.lis.Addr().String()
}

func (s *Server) Start() error {
	logger.Info("grpc health server listening", "addr", s.Addr())

	return s.grpc.Serve(s.lis)
}

// Refresh runs check and publishes its outcome for ServiceName and the
// overall server status.
func (s *Server) Refresh(ctx context.Context, check Checker) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := check(ctx); err != nil {
		logger.Warn("health check failed", "err", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus(ServiceName, status)
	s.health.SetServingStatus("", status)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
