package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/sphynkx/ytstorage"
	"github.com/sphynkx/ytstorage/driver"
	pb "github.com/sphynkx/ytstorage/proto"
)

// Options configures one node process.
type Options struct {
	Driver driver.Driver
	Logger *ytstorage.Logger

	// ChunkSize bounds outgoing content chunks; 0 means DefaultChunkSize.
	ChunkSize int
	// MaxMessageBytes bounds gRPC messages in both directions; 0 keeps
	// the grpc defaults.
	MaxMessageBytes int

	AppName    string
	Version    string
	InstanceID string
	Labels     map[string]string
}

// New builds the grpc server with both services registered and logging
// interceptors installed.
func New(opts Options) *grpc.Server {
	log := opts.Logger
	if log == nil {
		log = ytstorage.NoopLogger()
	}

	grpcOpts := []grpc.ServerOption{
		grpc.UnaryInterceptor(UnaryLogging(log)),
		grpc.StreamInterceptor(StreamLogging(log)),
	}
	if opts.MaxMessageBytes > 0 {
		grpcOpts = append(grpcOpts,
			grpc.MaxRecvMsgSize(opts.MaxMessageBytes),
			grpc.MaxSendMsgSize(opts.MaxMessageBytes),
		)
	}

	srv := grpc.NewServer(grpcOpts...)
	pb.RegisterStorageServiceServer(srv, NewStorageServer(opts.Driver, log, opts.ChunkSize))
	pb.RegisterInfoServiceServer(srv, NewInfoServer(opts.AppName, opts.Version, opts.InstanceID, opts.Driver, opts.Labels))
	return srv
}

// Serve listens on addr and blocks until the server stops.
func Serve(srv *grpc.Server, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return srv.Serve(lis)
}
