package driver

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/sphynkx/ytstorage/internal/cache"
)

// CacheOptions configures the Cached decorator.
type CacheOptions struct {
	// MaxBytes bounds the total cache footprint.
	MaxBytes int64
	// MaxObjectBytes bounds which objects are cached whole on the read
	// path. Larger objects stream straight from the backend.
	MaxObjectBytes int64
	// StatTTL and DataTTL bound staleness for metadata and content
	// entries respectively.
	StatTTL time.Duration
	DataTTL time.Duration
}

// DefaultCacheOptions mirrors the deployment defaults: 256 MiB cache,
// objects up to 1 MiB, 10 minute metadata TTL, 1 hour content TTL.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		MaxBytes:       256 << 20,
		MaxObjectBytes: 1 << 20,
		StatTTL:        10 * time.Minute,
		DataTTL:        time.Hour,
	}
}

// Cached wraps inner with a read-side cache for Stat results and whole
// small objects. Writes and deletes invalidate before reaching the cache
// again; List always queries the backend. Only this process's own writes
// are observed: an external writer to the same backend can be served stale
// entries up to the configured TTL.
func Cached(inner Driver, opts CacheOptions) Driver {
	def := DefaultCacheOptions()
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = def.MaxBytes
	}
	if opts.MaxObjectBytes <= 0 {
		opts.MaxObjectBytes = def.MaxObjectBytes
	}
	if opts.StatTTL <= 0 {
		opts.StatTTL = def.StatTTL
	}
	if opts.DataTTL <= 0 {
		opts.DataTTL = def.DataTTL
	}
	return &cachedDriver{
		inner: inner,
		lru:   cache.NewLRU(opts.MaxBytes),
		opts:  opts,
	}
}

type cachedDriver struct {
	inner Driver
	lru   *cache.LRU
	opts  CacheOptions
}

func (d *cachedDriver) Kind() string { return d.inner.Kind() }

func (d *cachedDriver) Unwrap() Driver { return d.inner }

func (d *cachedDriver) invalidate(key string) {
	d.lru.Delete(
		cache.Key{Class: cache.ClassStat, Path: key},
		cache.Key{Class: cache.ClassData, Path: key},
	)
}

func (d *cachedDriver) Put(ctx context.Context, key string, r io.Reader, size int64, opts PutOptions) error {
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	if err := d.inner.Put(ctx, key, r, size, opts); err != nil {
		return err
	}
	d.invalidate(key)
	return nil
}

func (d *cachedDriver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return nil, err
	}
	if v, ok := d.lru.Get(cache.Key{Class: cache.ClassData, Path: key}); ok {
		return io.NopCloser(bytes.NewReader(v.([]byte))), nil
	}

	rc, err := d.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return &fillingReader{rc: rc, d: d, key: key}, nil
}

func (d *cachedDriver) Delete(ctx context.Context, key string) error {
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	if err := d.inner.Delete(ctx, key); err != nil {
		return err
	}
	d.invalidate(key)
	return nil
}

func (d *cachedDriver) Exists(ctx context.Context, key string) (bool, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return false, err
	}
	// A cached stat proves presence. Absence is never cached, so a miss
	// still has to ask the backend.
	if _, ok := d.lru.Get(cache.Key{Class: cache.ClassStat, Path: key}); ok {
		return true, nil
	}
	return d.inner.Exists(ctx, key)
}

func (d *cachedDriver) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	cacheKey := cache.Key{Class: cache.ClassStat, Path: key}
	if v, ok := d.lru.Get(cacheKey); ok {
		return v.(ObjectInfo), nil
	}

	info, err := d.inner.Stat(ctx, key)
	if err != nil {
		return ObjectInfo{}, err
	}
	d.lru.Set(cacheKey, info, int64(len(key))+128, d.opts.StatTTL)
	return info, nil
}

func (d *cachedDriver) List(ctx context.Context, prefix string, fn ListFunc) error {
	return d.inner.List(ctx, prefix, fn)
}

// fillingReader passes a Get stream through and captures the bytes. If the
// stream ends cleanly and fits the per-object bound, the payload enters
// the cache; a partial read or oversized object is never cached.
type fillingReader struct {
	rc   io.ReadCloser
	d    *cachedDriver
	key  string
	buf  bytes.Buffer
	full bool // reached EOF
	over bool // exceeded MaxObjectBytes, stop capturing
}

func (f *fillingReader) Read(p []byte) (int, error) {
	n, err := f.rc.Read(p)
	if n > 0 && !f.over {
		if int64(f.buf.Len()+n) > f.d.opts.MaxObjectBytes {
			f.over = true
			f.buf.Reset()
		} else {
			f.buf.Write(p[:n])
		}
	}
	if err == io.EOF {
		f.full = true
	}
	return n, err
}

func (f *fillingReader) Close() error {
	err := f.rc.Close()
	if f.full && !f.over {
		data := append([]byte(nil), f.buf.Bytes()...)
		f.d.lru.Set(cache.Key{Class: cache.ClassData, Path: f.key}, data, int64(len(data)), f.d.opts.DataTTL)
	}
	return err
}
