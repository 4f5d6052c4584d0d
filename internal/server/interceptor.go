package server

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/sphynkx/ytstorage"
)

// UnaryLogging logs each unary RPC with its duration and outcome.
func UnaryLogging(log *ytstorage.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.LogRPC(ctx, info.FullMethod, time.Since(start), err)
		return resp, err
	}
}

// StreamLogging logs each streaming RPC once it completes.
func StreamLogging(log *ytstorage.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		log.LogRPC(ss.Context(), info.FullMethod, time.Since(start), err)
		return err
	}
}
