// Package ytstorage is a storage gateway for media assets.
//
// It exposes object-storage operations (store, fetch, list, delete, stat)
// over gRPC and maps them onto one of several interchangeable backends:
// a local filesystem root or any S3 API-compatible service. Clients never
// see which backend is active; the gateway presents one stable contract
// regardless of where bytes physically live.
//
// The root package holds the driver factory (Open), which turns a Config
// into the single long-lived driver instance the whole process shares,
// plus the ambient pieces every component uses: the slog-based Logger and
// the MetricsCollector interface.
//
// Backend selection is a closed compiled-in set; switching backends means
// changing configuration and restarting. Migration between backends is
// performed out of process: stop the gateway, bulk-copy the objects with
// a sync tool preserving the key hierarchy, point the configuration at
// the new backend, start.
package ytstorage

// Version is the gateway version, overridable at build time via
//
//	go build -ldflags "-X github.com/sphynkx/ytstorage.Version=..."
var Version = "1.1.0"
