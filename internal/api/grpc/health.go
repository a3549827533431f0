// Package grpc serves the standard gRPC health protocol for the admin backend.
package grpc

import (
	"context"

	"locadora-admin/internal/api/grpc/interceptor"
	"locadora-admin/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported alongside the server-wide ("") status.
const ServiceName = "locadora.admin.v1.AdminService"

// HealthReporter mirrors the rental API's reachability into the gRPC health service.
type HealthReporter struct {
	server *health.Server
}

// NewHealthReporter starts NOT_SERVING until the first successful probe.
func NewHealthReporter() *HealthReporter {
	h := &HealthReporter{server: health.NewServer()}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

func (h *HealthReporter) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
}

// ReportUpstream records the outcome of the latest rental API probe.
func (h *HealthReporter) ReportUpstream(err error) {
	if err != nil {
		logger.Warn("Rental API unreachable", "error", err)
		h.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.set(healthpb.HealthCheckResponse_SERVING)
}

// Status returns the current server-wide status.
func (h *HealthReporter) Status(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := h.server.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return healthpb.HealthCheckResponse_SERVICE_UNKNOWN
	}
	return resp.GetStatus()
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *HealthReporter) Shutdown() {
	h.server.Shutdown()
}

// NewServer builds a gRPC server exposing the health service and reflection for grpcurl.
func NewServer(reporter *HealthReporter, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(interceptor.NewLoggingInterceptor().Unary()))
	s := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(s, reporter.server)
	reflection.Register(s)
	return s
}
