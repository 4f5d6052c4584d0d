package ytstorage

import (
	"context"
	"io"
	"time"

	"github.com/sphynkx/ytstorage/driver"
)

// WithMetrics wraps d so that every operation reports to m. The wrapper
// accounts streamed bytes, not declared sizes: a put that fails halfway
// records what was actually consumed.
func WithMetrics(d driver.Driver, m MetricsCollector) driver.Driver {
	return &instrumented{inner: d, metrics: m}
}

type instrumented struct {
	inner   driver.Driver
	metrics MetricsCollector
}

func (i *instrumented) Kind() string { return i.inner.Kind() }

func (i *instrumented) Put(ctx context.Context, key string, r io.Reader, size int64, opts driver.PutOptions) error {
	start := time.Now()
	cr := &countingReader{r: r}
	err := i.inner.Put(ctx, key, cr, size, opts)
	i.metrics.RecordPut(cr.n, time.Since(start), err)
	return err
}

func (i *instrumented) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	start := time.Now()
	rc, err := i.inner.Get(ctx, key)
	if err != nil {
		i.metrics.RecordGet(0, time.Since(start), err)
		return nil, err
	}
	return &meteredReadCloser{rc: rc, metrics: i.metrics, start: start}, nil
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := i.inner.Delete(ctx, key)
	i.metrics.RecordDelete(time.Since(start), err)
	return err
}

func (i *instrumented) Exists(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	ok, err := i.inner.Exists(ctx, key)
	i.metrics.RecordStat(time.Since(start), err)
	return ok, err
}

func (i *instrumented) Stat(ctx context.Context, key string) (driver.ObjectInfo, error) {
	start := time.Now()
	info, err := i.inner.Stat(ctx, key)
	i.metrics.RecordStat(time.Since(start), err)
	return info, err
}

func (i *instrumented) List(ctx context.Context, prefix string, fn driver.ListFunc) error {
	start := time.Now()
	keys := 0
	err := i.inner.List(ctx, prefix, func(key string) error {
		keys++
		return fn(key)
	})
	i.metrics.RecordList(keys, time.Since(start), err)
	return err
}

// Unwrap exposes the wrapped driver for capability discovery.
func (i *instrumented) Unwrap() driver.Driver { return i.inner }

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// meteredReadCloser records the get once, on Close. Read errors other
// than io.EOF are remembered so the record reflects a broken stream.
type meteredReadCloser struct {
	rc      io.ReadCloser
	metrics MetricsCollector
	start   time.Time
	n       int64
	readErr error
	done    bool
}

func (m *meteredReadCloser) Read(p []byte) (int, error) {
	n, err := m.rc.Read(p)
	m.n += int64(n)
	if err != nil && err != io.EOF {
		m.readErr = err
	}
	return n, err
}

func (m *meteredReadCloser) Close() error {
	err := m.rc.Close()
	if !m.done {
		m.done = true
		recErr := m.readErr
		if recErr == nil {
			recErr = err
		}
		m.metrics.RecordGet(m.n, time.Since(m.start), recErr)
	}
	return err
}
