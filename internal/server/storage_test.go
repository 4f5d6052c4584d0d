package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sphynkx/ytstorage/driver"
	pb "github.com/sphynkx/ytstorage/proto"
)

// fakePutStream feeds prepared messages to the Put handler and captures
// the ack.
type fakePutStream struct {
	grpc.ServerStream

	ctx  context.Context
	msgs []*pb.PutRequest
	idx  int
	ack  *pb.PutAck
}

func (s *fakePutStream) Context() context.Context { return s.ctx }

func (s *fakePutStream) Recv() (*pb.PutRequest, error) {
	if s.idx >= len(s.msgs) {
		return nil, io.EOF
	}
	m := s.msgs[s.idx]
	s.idx++
	return m, nil
}

func (s *fakePutStream) SendAndClose(ack *pb.PutAck) error {
	s.ack = ack
	return nil
}

// fakeGetStream collects sent chunks.
type fakeGetStream struct {
	grpc.ServerStream

	ctx     context.Context
	chunks  [][]byte
	sendErr error
}

func (s *fakeGetStream) Context() context.Context { return s.ctx }

func (s *fakeGetStream) Send(c *pb.GetChunk) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.chunks = append(s.chunks, append([]byte(nil), c.GetData()...))
	return nil
}

// fakeListStream collects sent entries.
type fakeListStream struct {
	grpc.ServerStream

	ctx     context.Context
	keys    []string
	failAt  int // fail the n-th Send (1-based); 0 never fails
	sendErr error
}

func (s *fakeListStream) Context() context.Context { return s.ctx }

func (s *fakeListStream) Send(e *pb.ListEntry) error {
	if s.failAt > 0 && len(s.keys)+1 == s.failAt {
		return s.sendErr
	}
	s.keys = append(s.keys, e.GetKey())
	return nil
}

func newTestServer(t *testing.T) (*StorageServer, *driver.Memory) {
	t.Helper()
	mem := driver.NewMemory()
	return NewStorageServer(mem, nil, 16), mem
}

func putChunks(key, contentType string, chunks ...string) []*pb.PutRequest {
	msgs := []*pb.PutRequest{{Key: key, ContentType: contentType}}
	for _, c := range chunks {
		msgs = append(msgs, &pb.PutRequest{Data: []byte(c)})
	}
	return msgs
}

func TestPut_RoundTrip(t *testing.T) {
	srv, mem := newTestServer(t)

	stream := &fakePutStream{
		ctx:  context.Background(),
		msgs: putChunks("videos/a.mp4", "video/mp4", "hello ", "world"),
	}
	require.NoError(t, srv.Put(stream))

	require.NotNil(t, stream.ack)
	assert.Equal(t, "videos/a.mp4", stream.ack.GetKey())
	assert.Equal(t, int64(11), stream.ack.GetSize())

	rc, err := mem.Get(context.Background(), "videos/a.mp4")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "hello world", string(got))

	info, err := mem.Stat(context.Background(), "videos/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", info.ContentType)
}

func TestPut_FirstMessageMayCarryData(t *testing.T) {
	srv, mem := newTestServer(t)

	stream := &fakePutStream{
		ctx:  context.Background(),
		msgs: []*pb.PutRequest{{Key: "k", Data: []byte("inline")}},
	}
	require.NoError(t, srv.Put(stream))
	assert.Equal(t, int64(6), stream.ack.GetSize())

	rc, err := mem.Get(context.Background(), "k")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "inline", string(got))
}

func TestPut_EmptyObject(t *testing.T) {
	srv, mem := newTestServer(t)

	stream := &fakePutStream{
		ctx:  context.Background(),
		msgs: []*pb.PutRequest{{Key: "empty"}},
	}
	require.NoError(t, srv.Put(stream))
	assert.Zero(t, stream.ack.GetSize())

	ok, err := mem.Exists(context.Background(), "empty")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPut_EmptyStream(t *testing.T) {
	srv, _ := newTestServer(t)

	err := srv.Put(&fakePutStream{ctx: context.Background()})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPut_InvalidKeyRejectedBeforeDriver(t *testing.T) {
	srv, mem := newTestServer(t)

	for _, key := range []string{"", "../x", "a//b"} {
		err := srv.Put(&fakePutStream{
			ctx:  context.Background(),
			msgs: putChunks(key, "", "data"),
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "key %q", key)
	}

	// Nothing was written.
	require.NoError(t, mem.List(context.Background(), "", func(key string) error {
		t.Fatalf("unexpected object %q", key)
		return nil
	}))
}

// headObservingDriver reads the first chunk off the incoming body,
// announces it, then drains the rest.
type headObservingDriver struct {
	driver.Driver

	headSeen chan struct{}
	head     []byte
	total    int64
}

func (d *headObservingDriver) Put(ctx context.Context, key string, r io.Reader, size int64, opts driver.PutOptions) error {
	buf := make([]byte, 64)
	n, err := r.Read(buf)
	if err != nil {
		return err
	}
	d.head = append([]byte(nil), buf[:n]...)
	close(d.headSeen)

	rest, err := io.Copy(io.Discard, r)
	d.total = int64(n) + rest
	return err
}

// gatedPutStream withholds its tail messages until the backend has
// consumed the head of the stream.
type gatedPutStream struct {
	fakePutStream

	gate      <-chan struct{}
	gateAfter int
}

func (s *gatedPutStream) Recv() (*pb.PutRequest, error) {
	if s.idx == s.gateAfter {
		select {
		case <-s.gate:
		case <-time.After(2 * time.Second):
			return nil, errors.New("tail requested before the backend saw the head")
		}
	}
	return s.fakePutStream.Recv()
}

func TestPut_ForwardsChunksIncrementally(t *testing.T) {
	drv := &headObservingDriver{
		Driver:   driver.NewMemory(),
		headSeen: make(chan struct{}),
	}
	srv := NewStorageServer(drv, nil, 16)

	// The stream refuses to hand over the tail until the backend has
	// read the first chunk, so a handler that accumulated the whole
	// stream before writing would fail here.
	msgs := putChunks("videos/big.mp4", "video/mp4", "head-chunk", "tail-1", "tail-2")
	stream := &gatedPutStream{
		fakePutStream: fakePutStream{ctx: context.Background(), msgs: msgs},
		gate:          drv.headSeen,
		gateAfter:     2, // key message and head chunk flow freely
	}

	require.NoError(t, srv.Put(stream))
	assert.Equal(t, "head-chunk", string(drv.head))
	assert.Equal(t, int64(len("head-chunktail-1tail-2")), drv.total)
	require.NotNil(t, stream.ack)
	assert.Equal(t, drv.total, stream.ack.GetSize())
}

func TestGet_ChunkedStreaming(t *testing.T) {
	srv, mem := newTestServer(t)
	ctx := context.Background()

	// 50 bytes against a 16 byte chunk size: four chunks.
	data := make([]byte, 50)
	_, err := rand.Read(data)
	require.NoError(t, err)
	require.NoError(t, mem.Put(ctx, "big", bytes.NewReader(data), 50, driver.PutOptions{}))

	stream := &fakeGetStream{ctx: ctx}
	require.NoError(t, srv.Get(&pb.GetRequest{Key: "big"}, stream))

	require.Len(t, stream.chunks, 4)
	for _, c := range stream.chunks[:3] {
		assert.Len(t, c, 16)
	}
	assert.Equal(t, data, bytes.Join(stream.chunks, nil))
}

func TestGet_Missing(t *testing.T) {
	srv, _ := newTestServer(t)

	err := srv.Get(&pb.GetRequest{Key: "missing"}, &fakeGetStream{ctx: context.Background()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGet_InvalidKey(t *testing.T) {
	srv, _ := newTestServer(t)

	err := srv.Get(&pb.GetRequest{Key: "../x"}, &fakeGetStream{ctx: context.Background()})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDelete_Idempotent(t *testing.T) {
	srv, mem := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, mem.Put(ctx, "k", strings.NewReader("v"), 1, driver.PutOptions{}))

	ack, err := srv.Delete(ctx, &pb.DeleteRequest{Key: "k"})
	require.NoError(t, err)
	assert.Equal(t, "k", ack.GetKey())

	// Deleting the now missing key still acks success.
	ack, err = srv.Delete(ctx, &pb.DeleteRequest{Key: "k"})
	require.NoError(t, err)
	assert.Equal(t, "k", ack.GetKey())
}

func TestDelete_InvalidKeyStillRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := srv.Delete(context.Background(), &pb.DeleteRequest{Key: "../x"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestExists(t *testing.T) {
	srv, mem := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, mem.Put(ctx, "k", strings.NewReader("v"), 1, driver.PutOptions{}))

	resp, err := srv.Exists(ctx, &pb.ExistsRequest{Key: "k"})
	require.NoError(t, err)
	assert.True(t, resp.GetExists())

	resp, err = srv.Exists(ctx, &pb.ExistsRequest{Key: "other"})
	require.NoError(t, err)
	assert.False(t, resp.GetExists())
}

func TestStat_FieldsMapped(t *testing.T) {
	srv, mem := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, mem.Put(ctx, "k", strings.NewReader("12345"), 5, driver.PutOptions{ContentType: "text/plain"}))

	resp, err := srv.Stat(ctx, &pb.StatRequest{Key: "k"})
	require.NoError(t, err)
	assert.Equal(t, "k", resp.GetKey())
	assert.Equal(t, int64(5), resp.GetSize())
	assert.Equal(t, "text/plain", resp.GetContentType())
	assert.Positive(t, resp.GetUpdatedAtMs())

	_, err = srv.Stat(ctx, &pb.StatRequest{Key: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestList_StreamsEntries(t *testing.T) {
	srv, mem := newTestServer(t)
	ctx := context.Background()

	for _, key := range []string{"a/1", "a/2", "b/3"} {
		require.NoError(t, mem.Put(ctx, key, strings.NewReader("x"), 1, driver.PutOptions{}))
	}

	stream := &fakeListStream{ctx: ctx}
	require.NoError(t, srv.List(&pb.ListRequest{Prefix: "a/"}, stream))
	assert.Equal(t, []string{"a/1", "a/2"}, stream.keys)

	// Empty result set is an empty stream.
	stream = &fakeListStream{ctx: ctx}
	require.NoError(t, srv.List(&pb.ListRequest{Prefix: "z/"}, stream))
	assert.Empty(t, stream.keys)
}

func TestList_SendErrorPassedThrough(t *testing.T) {
	srv, mem := newTestServer(t)
	ctx := context.Background()

	for _, key := range []string{"a/1", "a/2"} {
		require.NoError(t, mem.Put(ctx, key, strings.NewReader("x"), 1, driver.PutOptions{}))
	}

	transport := status.Error(codes.Unavailable, "client went away")
	stream := &fakeListStream{ctx: ctx, failAt: 2, sendErr: transport}
	err := srv.List(&pb.ListRequest{}, stream)
	assert.Equal(t, transport, err)
}

func TestGet_CancelledContext(t *testing.T) {
	srv, mem := newTestServer(t)

	require.NoError(t, mem.Put(context.Background(), "k", strings.NewReader("v"), 1, driver.PutOptions{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Memory driver checks ctx in List but not Get; the RPC layer maps
	// a cancellation surfaced by any layer. Exercise via List.
	stream := &fakeListStream{ctx: ctx}
	err := srv.List(&pb.ListRequest{}, stream)
	assert.Equal(t, codes.Canceled, status.Code(err))
}
