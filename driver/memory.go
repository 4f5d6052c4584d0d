package driver

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory is an in-memory Driver implementation for testing.
// Thread-safe for concurrent reads and writes.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data []byte
	info ObjectInfo
}

// NewMemory creates a new in-memory driver.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string]memoryObject)}
}

// Kind implements Driver.
func (m *Memory) Kind() string { return "memory" }

// Put implements Driver.
func (m *Memory) Put(ctx context.Context, key string, r io.Reader, size int64, opts PutOptions) error {
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	data := append([]byte(nil), buf.Bytes()...)
	m.objects[key] = memoryObject{
		data: data,
		info: ObjectInfo{
			Key:          key,
			Size:         int64(len(data)),
			ContentType:  opts.ContentType,
			LastModified: time.Now().UTC(),
		},
	}
	return nil
}

// Get implements Driver.
func (m *Memory) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy so the caller cannot observe later overwrites mid-read.
	data := append([]byte(nil), obj.data...)
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete implements Driver.
func (m *Memory) Delete(ctx context.Context, key string) error {
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return ErrNotFound
	}
	delete(m.objects, key)
	return nil
}

// Exists implements Driver.
func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok, nil
}

// Stat implements Driver.
func (m *Memory) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return ObjectInfo{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return ObjectInfo{}, ErrNotFound
	}
	return obj.info, nil
}

// List implements Driver.
func (m *Memory) List(ctx context.Context, prefix string, fn ListFunc) error {
	prefix = CleanPrefix(prefix)

	m.mu.RLock()
	keys := make([]string, 0, len(m.objects))
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	m.mu.RUnlock()

	sort.Strings(keys)
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(key); err != nil {
			return err
		}
	}
	return nil
}
