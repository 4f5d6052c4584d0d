// Package server implements the gRPC services of the storage node on
// top of a driver.Driver.
package server

import (
	"context"
	"errors"
	"io"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sphynkx/ytstorage"
	"github.com/sphynkx/ytstorage/driver"
	pb "github.com/sphynkx/ytstorage/proto"
)

// DefaultChunkSize bounds outgoing content chunks when no size is
// configured.
const DefaultChunkSize = 1 << 20

// StorageServer serves StorageService against the configured driver.
// Safe for concurrent use; all per-call state lives on the stack.
type StorageServer struct {
	pb.UnimplementedStorageServiceServer

	drv       driver.Driver
	log       *ytstorage.Logger
	chunkSize int
	buffers   sync.Pool
}

// NewStorageServer wires a driver into the RPC surface. chunkSize <= 0
// selects DefaultChunkSize.
func NewStorageServer(drv driver.Driver, log *ytstorage.Logger, chunkSize int) *StorageServer {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if log == nil {
		log = ytstorage.NoopLogger()
	}
	s := &StorageServer{drv: drv, log: log, chunkSize: chunkSize}
	s.buffers.New = func() any {
		b := make([]byte, chunkSize)
		return &b
	}
	return s
}

// Put consumes the client stream and feeds it to the driver through a
// pipe, so the object is written incrementally and never accumulated in
// memory. The first message must carry the key.
func (s *StorageServer) Put(stream pb.StorageService_PutServer) error {
	ctx := stream.Context()

	first, err := stream.Recv()
	if err == io.EOF {
		return status.Error(codes.InvalidArgument, "put stream carried no messages")
	}
	if err != nil {
		return err
	}

	// Reject malformed keys before any backend work.
	key, err := driver.NormalizeKey(first.GetKey())
	if err != nil {
		return toStatus(err)
	}
	opts := driver.PutOptions{ContentType: first.GetContentType()}

	pr, pw := io.Pipe()
	done := make(chan error, 1)
	go func() {
		err := s.drv.Put(ctx, key, pr, -1, opts)
		// Unblocks a pending Write when the driver bailed out early.
		pr.CloseWithError(err)
		done <- err
	}()

	var total int64
	streamErr := s.pump(stream, first, pw, &total)
	if streamErr != nil {
		pw.CloseWithError(streamErr)
	} else {
		pw.Close()
	}
	putErr := <-done

	switch {
	case putErr != nil:
		return toStatus(putErr)
	case streamErr != nil:
		// Client-side receive failure; already a transport error.
		return streamErr
	}
	return stream.SendAndClose(&pb.PutAck{Key: key, Size: total})
}

// pump forwards data chunks from the stream into w, starting with the
// already received first message.
func (s *StorageServer) pump(stream pb.StorageService_PutServer, first *pb.PutRequest, w io.Writer, total *int64) error {
	msg := first
	for {
		if data := msg.GetData(); len(data) > 0 {
			n, err := w.Write(data)
			*total += int64(n)
			if err != nil {
				return err
			}
		}
		var err error
		msg, err = stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Get streams the object back in bounded chunks. Emission starts as
// soon as the first chunk is read; the buffer is pooled and reused
// across calls.
func (s *StorageServer) Get(req *pb.GetRequest, stream pb.StorageService_GetServer) error {
	ctx := stream.Context()

	key, err := driver.NormalizeKey(req.GetKey())
	if err != nil {
		return toStatus(err)
	}

	rc, err := s.drv.Get(ctx, key)
	if err != nil {
		return toStatus(err)
	}
	defer rc.Close()

	buf := s.buffers.Get().(*[]byte)
	defer s.buffers.Put(buf)

	for {
		n, rerr := rc.Read(*buf)
		if n > 0 {
			// Send marshals before returning, so the buffer may be
			// reused on the next iteration.
			if serr := stream.Send(&pb.GetChunk{Data: (*buf)[:n]}); serr != nil {
				return serr
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return toStatus(rerr)
		}
	}
}

// Delete removes the object. A missing key acks success: delete is
// idempotent at the RPC boundary even though the driver reports
// ErrNotFound.
func (s *StorageServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteAck, error) {
	key, err := driver.NormalizeKey(req.GetKey())
	if err != nil {
		return nil, toStatus(err)
	}

	if err := s.drv.Delete(ctx, key); err != nil && !errors.Is(err, driver.ErrNotFound) {
		return nil, toStatus(err)
	}
	return &pb.DeleteAck{Key: key}, nil
}

// Exists reports presence; absence is a normal response, never an error.
func (s *StorageServer) Exists(ctx context.Context, req *pb.ExistsRequest) (*pb.ExistsResponse, error) {
	key, err := driver.NormalizeKey(req.GetKey())
	if err != nil {
		return nil, toStatus(err)
	}

	ok, err := s.drv.Exists(ctx, key)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ExistsResponse{Exists: ok}, nil
}

// Stat returns object metadata. Fields the backend does not report stay
// at their zero value.
func (s *StorageServer) Stat(ctx context.Context, req *pb.StatRequest) (*pb.StatResponse, error) {
	key, err := driver.NormalizeKey(req.GetKey())
	if err != nil {
		return nil, toStatus(err)
	}

	info, err := s.drv.Stat(ctx, key)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.StatResponse{
		Key:         info.Key,
		Size:        info.Size,
		ContentType: info.ContentType,
		Etag:        info.ETag,
	}
	if !info.LastModified.IsZero() {
		resp.UpdatedAtMs = info.LastModified.UnixMilli()
	}
	return resp, nil
}

// List streams one entry per key under the prefix, in the order the
// driver walk yields them.
func (s *StorageServer) List(req *pb.ListRequest, stream pb.StorageService_ListServer) error {
	ctx := stream.Context()
	prefix := driver.CleanPrefix(req.GetPrefix())

	var sendErr error
	err := s.drv.List(ctx, prefix, func(key string) error {
		if err := stream.Send(&pb.ListEntry{Key: key}); err != nil {
			sendErr = err
			return err
		}
		return nil
	})
	if err != nil {
		if sendErr != nil {
			// Transport failure mid-stream; pass through untouched.
			return sendErr
		}
		return toStatus(err)
	}
	return nil
}
