package interceptor

import (
	"context"
	"time"

	"locadora-admin/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type LoggingInterceptor struct {
	// quiet lists methods logged at debug level; health probes arrive every few seconds.
	quiet map[string]bool
}

func NewLoggingInterceptor() *LoggingInterceptor {
	return &LoggingInterceptor{
		quiet: map[string]bool{
			"/grpc.health.v1.Health/Check": true,
			"/grpc.health.v1.Health/Watch": true,
		},
	}
}

// Unary returns a server interceptor that logs method, code and duration of unary RPCs.
func (i *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		args := []any{"method", info.FullMethod, "code", code.String(), "duration_ms", time.Since(start).Milliseconds()}
		switch {
		case code != codes.OK && code != codes.NotFound:
			logger.Error("gRPC request failed", append(args, "error", err)...)
		case i.quiet[info.FullMethod]:
			logger.Debug("gRPC request", args...)
		default:
			logger.Info("gRPC request", args...)
		}
		return resp, err
	}
}
