package driver_test

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphynkx/ytstorage/driver"
)

// countingDriver counts backend hits per operation.
type countingDriver struct {
	driver.Driver
	gets   atomic.Int64
	stats  atomic.Int64
	exists atomic.Int64
}

func (c *countingDriver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	c.gets.Add(1)
	return c.Driver.Get(ctx, key)
}

func (c *countingDriver) Stat(ctx context.Context, key string) (driver.ObjectInfo, error) {
	c.stats.Add(1)
	return c.Driver.Stat(ctx, key)
}

func (c *countingDriver) Exists(ctx context.Context, key string) (bool, error) {
	c.exists.Add(1)
	return c.Driver.Exists(ctx, key)
}

func newCachedFixture(t *testing.T, opts driver.CacheOptions) (*countingDriver, driver.Driver) {
	t.Helper()
	counting := &countingDriver{Driver: driver.NewMemory()}
	return counting, driver.Cached(counting, opts)
}

func TestCached_StatServedFromCache(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{})

	require.NoError(t, drv.Put(ctx, "a/b", strings.NewReader("data"), 4, driver.PutOptions{}))

	first, err := drv.Stat(ctx, "a/b")
	require.NoError(t, err)
	second, err := drv.Stat(ctx, "a/b")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), counting.stats.Load())
}

func TestCached_ExistsUsesCachedStatAsPresence(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{})

	require.NoError(t, drv.Put(ctx, "a/b", strings.NewReader("data"), 4, driver.PutOptions{}))

	_, err := drv.Stat(ctx, "a/b")
	require.NoError(t, err)

	ok, err := drv.Exists(ctx, "a/b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, counting.exists.Load())

	// Absence always asks the backend: it is never cached.
	ok, err = drv.Exists(ctx, "a/missing")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = drv.Exists(ctx, "a/missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(2), counting.exists.Load())
}

func TestCached_SmallObjectServedFromCache(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{MaxObjectBytes: 64})

	require.NoError(t, drv.Put(ctx, "small", strings.NewReader("tiny payload"), -1, driver.PutOptions{}))

	// First read fills the cache; the stream must be fully drained and
	// closed for the payload to be kept.
	rc, err := drv.Get(ctx, "small")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "tiny payload", string(got))

	rc, err = drv.Get(ctx, "small")
	require.NoError(t, err)
	got, err = io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "tiny payload", string(got))

	assert.Equal(t, int64(1), counting.gets.Load())
}

func TestCached_LargeObjectNeverCached(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{MaxObjectBytes: 4})

	require.NoError(t, drv.Put(ctx, "large", strings.NewReader("well over four bytes"), -1, driver.PutOptions{}))

	for i := 0; i < 2; i++ {
		rc, err := drv.Get(ctx, "large")
		require.NoError(t, err)
		_, err = io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
	}
	assert.Equal(t, int64(2), counting.gets.Load())
}

func TestCached_PartialReadNotCached(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{})

	require.NoError(t, drv.Put(ctx, "obj", strings.NewReader("0123456789"), -1, driver.PutOptions{}))

	// Abandon the stream mid-read.
	rc, err := drv.Get(ctx, "obj")
	require.NoError(t, err)
	buf := make([]byte, 4)
	_, err = rc.Read(buf)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	rc, err = drv.Get(ctx, "obj")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "0123456789", string(got))

	assert.Equal(t, int64(2), counting.gets.Load())
}

func TestCached_WriteInvalidates(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{})

	require.NoError(t, drv.Put(ctx, "obj", strings.NewReader("one"), -1, driver.PutOptions{}))

	rc, err := drv.Get(ctx, "obj")
	require.NoError(t, err)
	_, err = io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	_, err = drv.Stat(ctx, "obj")
	require.NoError(t, err)

	// Overwrite drops both the data and the stat entry.
	require.NoError(t, drv.Put(ctx, "obj", strings.NewReader("two"), -1, driver.PutOptions{}))

	rc, err = drv.Get(ctx, "obj")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "two", string(got))

	info, err := drv.Stat(ctx, "obj")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size)
	assert.Equal(t, int64(2), counting.gets.Load())
	assert.Equal(t, int64(2), counting.stats.Load())
}

func TestCached_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{})

	require.NoError(t, drv.Put(ctx, "obj", strings.NewReader("data"), -1, driver.PutOptions{}))
	_, err := drv.Stat(ctx, "obj")
	require.NoError(t, err)

	require.NoError(t, drv.Delete(ctx, "obj"))

	// The stale stat entry must be gone: Exists consults the backend.
	ok, err := drv.Exists(ctx, "obj")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), counting.exists.Load())
}

func TestCached_StatTTLExpires(t *testing.T) {
	ctx := context.Background()
	counting, drv := newCachedFixture(t, driver.CacheOptions{StatTTL: 20 * time.Millisecond})

	require.NoError(t, drv.Put(ctx, "obj", strings.NewReader("data"), -1, driver.PutOptions{}))

	_, err := drv.Stat(ctx, "obj")
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	_, err = drv.Stat(ctx, "obj")
	require.NoError(t, err)

	assert.Equal(t, int64(2), counting.stats.Load())
}
