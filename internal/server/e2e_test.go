package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/sphynkx/ytstorage/driver"
	pb "github.com/sphynkx/ytstorage/proto"
)

func dialTestServer(t *testing.T, drv driver.Driver) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := New(Options{
		Driver:     drv,
		ChunkSize:  32 << 10,
		AppName:    "ytstorage",
		Version:    "test",
		InstanceID: "node-test",
	})
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestEndToEnd_StorageService(t *testing.T) {
	conn := dialTestServer(t, driver.NewMemory())
	client := pb.NewStorageServiceClient(conn)
	ctx := context.Background()

	// Put: 100KiB over several chunks.
	data := make([]byte, 100<<10)
	_, err := rand.Read(data)
	require.NoError(t, err)

	put, err := client.Put(ctx)
	require.NoError(t, err)
	require.NoError(t, put.Send(&pb.PutRequest{Key: "videos/e2e.mp4", ContentType: "video/mp4"}))
	for off := 0; off < len(data); off += 16 << 10 {
		end := min(off+16<<10, len(data))
		require.NoError(t, put.Send(&pb.PutRequest{Data: data[off:end]}))
	}
	ack, err := put.CloseAndRecv()
	require.NoError(t, err)
	assert.Equal(t, "videos/e2e.mp4", ack.GetKey())
	assert.Equal(t, int64(len(data)), ack.GetSize())

	// Get: reassemble the chunk stream.
	get, err := client.Get(ctx, &pb.GetRequest{Key: "videos/e2e.mp4"})
	require.NoError(t, err)
	var buf bytes.Buffer
	for {
		chunk, err := get.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		buf.Write(chunk.GetData())
	}
	assert.Equal(t, data, buf.Bytes())

	// Stat.
	st, err := client.Stat(ctx, &pb.StatRequest{Key: "videos/e2e.mp4"})
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), st.GetSize())
	assert.Equal(t, "video/mp4", st.GetContentType())

	// Exists.
	ex, err := client.Exists(ctx, &pb.ExistsRequest{Key: "videos/e2e.mp4"})
	require.NoError(t, err)
	assert.True(t, ex.GetExists())

	// List.
	ls, err := client.List(ctx, &pb.ListRequest{Prefix: "videos/"})
	require.NoError(t, err)
	var keys []string
	for {
		entry, err := ls.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		keys = append(keys, entry.GetKey())
	}
	assert.Equal(t, []string{"videos/e2e.mp4"}, keys)

	// Delete twice: both succeed.
	_, err = client.Delete(ctx, &pb.DeleteRequest{Key: "videos/e2e.mp4"})
	require.NoError(t, err)
	_, err = client.Delete(ctx, &pb.DeleteRequest{Key: "videos/e2e.mp4"})
	require.NoError(t, err)

	// Now it is gone.
	_, err = client.Stat(ctx, &pb.StatRequest{Key: "videos/e2e.mp4"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEndToEnd_StatusCodes(t *testing.T) {
	conn := dialTestServer(t, driver.NewMemory())
	client := pb.NewStorageServiceClient(conn)
	ctx := context.Background()

	// Invalid key on a unary call.
	_, err := client.Stat(ctx, &pb.StatRequest{Key: "../escape"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Invalid key on a server stream surfaces at the first Recv.
	get, err := client.Get(ctx, &pb.GetRequest{Key: ""})
	require.NoError(t, err)
	_, err = get.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Missing object.
	get, err = client.Get(ctx, &pb.GetRequest{Key: "absent"})
	require.NoError(t, err)
	_, err = get.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEndToEnd_InfoService(t *testing.T) {
	conn := dialTestServer(t, driver.NewMemory())
	client := pb.NewInfoServiceClient(conn)

	resp, err := client.GetInfo(context.Background(), &pb.InfoRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ytstorage", resp.GetAppName())
	assert.Equal(t, "memory", resp.GetDriverKind())
	assert.Equal(t, "node-test", resp.GetInstanceId())
}
