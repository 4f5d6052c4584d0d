package driver

import (
	"context"
	"errors"
	"io"
	"time"
)

// ObjectInfo describes a stored object without its content.
// Zero values mean the backend does not report the field: the local
// filesystem backend has no content type, and only S3-compatible backends
// report ETags.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	ETag         string
}

// PutOptions carries optional metadata for a Put.
type PutOptions struct {
	// ContentType is stored alongside the object where the backend
	// supports it and reported back by Stat.
	ContentType string
}

// ListFunc is invoked by Driver.List once per key, in lexicographic order.
// Returning an error aborts the walk; List returns that error verbatim.
type ListFunc func(key string) error

// Driver is the capability set a storage backend must provide.
//
// All methods validate the key (see NormalizeKey) before touching the
// backend and return ErrInvalidKey without side effects if it is malformed.
type Driver interface {
	// Kind identifies the backend ("fs", "s3", "minio", "memory").
	Kind() string

	// Put writes the content read from r under key, fully replacing any
	// prior content. Implementations stream from r and never require the
	// whole payload in memory. size is a hint in bytes; pass -1 if unknown.
	// Replacement is atomic from the caller's point of view.
	Put(ctx context.Context, key string, r io.Reader, size int64, opts PutOptions) error

	// Get opens the object for reading. The returned reader streams the
	// content in order and must be closed on every path. A Get is
	// restartable per call, not mid-stream.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. A missing key is ErrNotFound; the RPC
	// layer decides whether to surface that (see internal/server).
	Delete(ctx context.Context, key string) error

	// Exists reports whether the object is present. Absence is a valid
	// false result, never ErrNotFound.
	Exists(ctx context.Context, key string) (bool, error)

	// Stat returns metadata without transferring content.
	Stat(ctx context.Context, key string) (ObjectInfo, error)

	// List enumerates keys beginning with prefix, lexicographically,
	// each exactly once. The enumeration is finite, lazy and re-queries
	// the backend on every call.
	List(ctx context.Context, prefix string, fn ListFunc) error
}

// CapacityInfo reports backend capacity, best effort.
type CapacityInfo struct {
	TotalBytes uint64
	FreeBytes  uint64
}

// CapacityReporter is an optional interface for drivers that can report
// capacity. Callers must type-assert and tolerate absence.
type CapacityReporter interface {
	Capacity(ctx context.Context) (CapacityInfo, error)
}

// Unwrapper is implemented by decorators that wrap another Driver.
// ReportCapacity uses it to discover optional capabilities through a
// decorator chain.
type Unwrapper interface {
	Unwrap() Driver
}

// ReportCapacity walks d through any decorator chain and invokes the
// first CapacityReporter it finds. Drivers without capacity support
// return errors.ErrUnsupported.
func ReportCapacity(ctx context.Context, d Driver) (CapacityInfo, error) {
	for d != nil {
		if cr, ok := d.(CapacityReporter); ok {
			return cr.Capacity(ctx)
		}
		u, ok := d.(Unwrapper)
		if !ok {
			break
		}
		d = u.Unwrap()
	}
	return CapacityInfo{}, errors.ErrUnsupported
}
