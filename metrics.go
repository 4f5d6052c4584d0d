package ytstorage

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring systems
// like Prometheus.
type MetricsCollector interface {
	// RecordPut is called after each put. bytes is the number of bytes
	// consumed from the client stream, duration the total time taken,
	// err nil if successful.
	RecordPut(bytes int64, duration time.Duration, err error)

	// RecordGet is called once per get, when the content stream closes.
	RecordGet(bytes int64, duration time.Duration, err error)

	// RecordDelete is called after each delete.
	RecordDelete(duration time.Duration, err error)

	// RecordStat is called after each stat or exists check.
	RecordStat(duration time.Duration, err error)

	// RecordList is called after each listing with the number of keys
	// enumerated.
	RecordList(keys int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPut(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordGet(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error)     {}
func (NoopMetricsCollector) RecordStat(time.Duration, error)       {}
func (NoopMetricsCollector) RecordList(int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and the Info service without external dependencies.
type BasicMetricsCollector struct {
	PutCount    atomic.Int64
	PutErrors   atomic.Int64
	PutBytes    atomic.Int64
	GetCount    atomic.Int64
	GetErrors   atomic.Int64
	GetBytes    atomic.Int64
	DeleteCount atomic.Int64
	DeleteErrs  atomic.Int64
	StatCount   atomic.Int64
	StatErrors  atomic.Int64
	ListCount   atomic.Int64
	ListErrors  atomic.Int64
	ListKeys    atomic.Int64
}

// RecordPut implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPut(bytes int64, _ time.Duration, err error) {
	b.PutCount.Add(1)
	b.PutBytes.Add(bytes)
	if err != nil {
		b.PutErrors.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(bytes int64, _ time.Duration, err error) {
	b.GetCount.Add(1)
	b.GetBytes.Add(bytes)
	if err != nil {
		b.GetErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(_ time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrs.Add(1)
	}
}

// RecordStat implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStat(_ time.Duration, err error) {
	b.StatCount.Add(1)
	if err != nil {
		b.StatErrors.Add(1)
	}
}

// RecordList implements MetricsCollector.
func (b *BasicMetricsCollector) RecordList(keys int, _ time.Duration, err error) {
	b.ListCount.Add(1)
	b.ListKeys.Add(int64(keys))
	if err != nil {
		b.ListErrors.Add(1)
	}
}
