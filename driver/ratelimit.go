package driver

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// RateLimited wraps inner so every backend call first waits on limiter.
// It protects small self-hosted backends from bursty media traffic; the
// limit applies to operations, not bytes. A nil limiter returns inner
// unchanged.
func RateLimited(inner Driver, limiter *rate.Limiter) Driver {
	if limiter == nil {
		return inner
	}
	return &rateLimitedDriver{inner: inner, limiter: limiter}
}

type rateLimitedDriver struct {
	inner   Driver
	limiter *rate.Limiter
}

func (d *rateLimitedDriver) Kind() string { return d.inner.Kind() }

func (d *rateLimitedDriver) Unwrap() Driver { return d.inner }

func (d *rateLimitedDriver) Put(ctx context.Context, key string, r io.Reader, size int64, opts PutOptions) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}
	return d.inner.Put(ctx, key, r, size, opts)
}

func (d *rateLimitedDriver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return d.inner.Get(ctx, key)
}

func (d *rateLimitedDriver) Delete(ctx context.Context, key string) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}
	return d.inner.Delete(ctx, key)
}

func (d *rateLimitedDriver) Exists(ctx context.Context, key string) (bool, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return false, err
	}
	return d.inner.Exists(ctx, key)
}

func (d *rateLimitedDriver) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return ObjectInfo{}, err
	}
	return d.inner.Stat(ctx, key)
}

func (d *rateLimitedDriver) List(ctx context.Context, prefix string, fn ListFunc) error {
	// One token per List call, regardless of how many keys it yields.
	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}
	return d.inner.List(ctx, prefix, fn)
}
