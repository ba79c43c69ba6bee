package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"laundry/pkg/logger"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second

	// ServiceName статус под этим именем отражает готовность HTTP API.
	ServiceName = "laundry.v1.OrderService"
)

type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
	lis    net.Listener
}

func NewHealthServer(log logger.Logger, port string) (*HealthServer, error) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("listen grpc health port %s: %w", port, err)
	}

	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &HealthServer{
		log: log.With(
			logger.NewField("component", "grpc-health"),
			logger.NewField("addr", lis.Addr().String()),
		),
		server: server,
		health: healthServer,
		lis:    lis,
	}, nil
}

func (s *HealthServer) Addr() string {
	return s.lis.Addr().String()
}

// Serve блокирует до остановки сервера.
func (s *HealthServer) Serve() error {
	s.log.Info("gRPC health server starting")
	if err := s.server.Serve(s.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health server: %w", err)
	}
	return nil
}

// SetNotServing переключает все сервисы в NOT_SERVING, чтобы балансировщик снял трафик.
func (s *HealthServer) SetNotServing() {
	s.health.Shutdown()
	s.log.Info("gRPC health switched to NOT_SERVING")
}

func (s *HealthServer) Stop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
}
