package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall "" entry.
const ServiceName = "bcs.Service"

// HealthReporter flips the gRPC health status of the service.
type HealthReporter struct {
	server *health.Server
}

// NewServer builds the gRPC server with the standard health service
// registered. The service starts NOT_SERVING until the first probe passes.
func NewServer() (*grpc.Server, *HealthReporter) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	reporter := &HealthReporter{server: hs}
	reporter.SetServing(false)
	return srv, reporter
}

func (r *HealthReporter) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	r.server.SetServingStatus("", status)
	r.server.SetServingStatus(ServiceName, status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (r *HealthReporter) Shutdown() {
	r.server.Shutdown()
}

func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		slog.Error("grpc call failed", "method", info.FullMethod, "duration", time.Since(start), "error", err)
	}
	return resp, err
}
