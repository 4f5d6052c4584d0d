package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"
)

// RetryOptions configures the Retry decorator.
type RetryOptions struct {
	// MaxAttempts is the total number of attempts including the first.
	// Values below 2 disable retrying.
	MaxAttempts int
	// InitialBackoff is the delay before the second attempt. Each further
	// attempt doubles it, capped at MaxBackoff. A random jitter of up to
	// half the delay is added to avoid synchronized retries.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryOptions returns the settings used by the gateway when
// retrying is enabled: 3 attempts, 100ms initial backoff, 2s cap.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

// Retry wraps inner with an explicit retry policy.
//
// Only ErrUnavailable is retried: every operation is keyed by an explicit
// key and overwrites or reads state, so repeating it cannot duplicate or
// append anything. All other kinds (ErrNotFound, ErrInvalidKey, write and
// read faults) surface immediately.
//
// Put is retried only when the content reader is an io.Seeker, because a
// consumed stream cannot be replayed. Get retries the open call, never a
// stream that already started.
func Retry(inner Driver, opts RetryOptions) Driver {
	if opts.MaxAttempts < 2 {
		return inner
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = DefaultRetryOptions().InitialBackoff
	}
	if opts.MaxBackoff < opts.InitialBackoff {
		opts.MaxBackoff = opts.InitialBackoff
	}
	return &retryDriver{inner: inner, opts: opts}
}

type retryDriver struct {
	inner Driver
	opts  RetryOptions
}

func (d *retryDriver) Kind() string { return d.inner.Kind() }

func (d *retryDriver) Unwrap() Driver { return d.inner }

func (d *retryDriver) do(ctx context.Context, op func() error) error {
	backoff := d.opts.InitialBackoff
	var err error
	for attempt := 0; attempt < d.opts.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := backoff + rand.N(backoff/2+1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff = min(backoff*2, d.opts.MaxBackoff)
		}
		if err = op(); err == nil || !errors.Is(err, ErrUnavailable) {
			return err
		}
	}
	return err
}

func (d *retryDriver) Put(ctx context.Context, key string, r io.Reader, size int64, opts PutOptions) error {
	seeker, ok := r.(io.Seeker)
	if !ok {
		return d.inner.Put(ctx, key, r, size, opts)
	}
	first := true
	return d.do(ctx, func() error {
		if !first {
			if _, err := seeker.Seek(0, io.SeekStart); err != nil {
				return ErrWriteFailed
			}
		}
		first = false
		return d.inner.Put(ctx, key, r, size, opts)
	})
}

func (d *retryDriver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	err := d.do(ctx, func() error {
		var err error
		rc, err = d.inner.Get(ctx, key)
		return err
	})
	return rc, err
}

func (d *retryDriver) Delete(ctx context.Context, key string) error {
	return d.do(ctx, func() error { return d.inner.Delete(ctx, key) })
}

func (d *retryDriver) Exists(ctx context.Context, key string) (bool, error) {
	var ok bool
	err := d.do(ctx, func() error {
		var err error
		ok, err = d.inner.Exists(ctx, key)
		return err
	})
	return ok, err
}

func (d *retryDriver) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	var info ObjectInfo
	err := d.do(ctx, func() error {
		var err error
		info, err = d.inner.Stat(ctx, key)
		return err
	})
	return info, err
}

func (d *retryDriver) List(ctx context.Context, prefix string, fn ListFunc) error {
	// A partially delivered walk must not be replayed: the caller would
	// see keys twice. Retry only attempts where no key was emitted yet.
	return d.do(ctx, func() error {
		emitted := false
		err := d.inner.List(ctx, prefix, func(key string) error {
			emitted = true
			return fn(key)
		})
		if err != nil && emitted && errors.Is(err, ErrUnavailable) {
			return fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		return err
	})
}
