// Package driver defines the storage backend abstraction for the ytstorage
// gateway.
//
// Driver is the capability set every backend implements. The gateway holds
// exactly one Driver instance for the process lifetime, shared by all
// concurrent RPC handlers; implementations must be safe for concurrent use
// and must not keep mutable cursor or session state across calls.
//
// # Built-in Implementations
//
//   - fs.Driver: local filesystem under a root directory, atomic
//     write-then-rename puts
//   - s3.Driver: any S3 API-compatible service via aws-sdk-go-v2
//   - minio.Driver: any S3 API-compatible service via minio-go
//   - Memory: map-backed driver for tests
//
// # Error Model
//
// Backend errors never cross the Driver boundary in their native form.
// Every implementation maps failures to the sentinel kinds in this package
// (ErrNotFound, ErrUnavailable, ...) so that callers can switch on
// errors.Is without knowing which backend is active.
//
// # Decorators
//
// Retry, RateLimited and Cached wrap an inner Driver without changing its
// contract. Retry is the only place in the system that retries backend
// calls; drivers themselves never do.
package driver
