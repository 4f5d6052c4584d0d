package ytstorage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphynkx/ytstorage/driver"
)

func TestWithMetrics_RecordsOperations(t *testing.T) {
	ctx := context.Background()
	m := &BasicMetricsCollector{}
	drv := WithMetrics(driver.NewMemory(), m)

	require.NoError(t, drv.Put(ctx, "a/b", strings.NewReader("12345"), 5, driver.PutOptions{}))
	assert.Equal(t, int64(1), m.PutCount.Load())
	assert.Equal(t, int64(5), m.PutBytes.Load())
	assert.Zero(t, m.PutErrors.Load())

	// Get records on Close, with the streamed byte count.
	rc, err := drv.Get(ctx, "a/b")
	require.NoError(t, err)
	_, err = io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, int64(1), m.GetCount.Load())
	assert.Equal(t, int64(5), m.GetBytes.Load())

	_, err = drv.Stat(ctx, "a/b")
	require.NoError(t, err)
	ok, err := drv.Exists(ctx, "a/b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), m.StatCount.Load())

	require.NoError(t, drv.List(ctx, "", func(string) error { return nil }))
	assert.Equal(t, int64(1), m.ListCount.Load())
	assert.Equal(t, int64(1), m.ListKeys.Load())

	require.NoError(t, drv.Delete(ctx, "a/b"))
	assert.Equal(t, int64(1), m.DeleteCount.Load())
	assert.Zero(t, m.DeleteErrs.Load())
}

func TestWithMetrics_ErrorsCounted(t *testing.T) {
	ctx := context.Background()
	m := &BasicMetricsCollector{}
	drv := WithMetrics(driver.NewMemory(), m)

	_, err := drv.Get(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, int64(1), m.GetCount.Load())
	assert.Equal(t, int64(1), m.GetErrors.Load())

	err = drv.Delete(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, int64(1), m.DeleteErrs.Load())
}

func TestWithMetrics_KindAndUnwrap(t *testing.T) {
	mem := driver.NewMemory()
	drv := WithMetrics(mem, NoopMetricsCollector{})

	assert.Equal(t, "memory", drv.Kind())

	u, ok := drv.(driver.Unwrapper)
	require.True(t, ok)
	assert.Same(t, driver.Driver(mem), u.Unwrap())
}
