// Package store provides the string-keyed blob store backing bookings and
// the attempt ledger.  Each key holds one JSON-serialized collection; the
// store itself knows nothing about the shape of the blobs.
package store

import (
	"context"
	"sync"
)

// Store is a synchronous string-keyed blob store.  Get reports absence via
// the second return value rather than an error, mirroring how the read
// paths treat a missing collection as empty.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Memory is an in-process Store used in tests and as the degraded fallback
// when Redis is unreachable at startup.  Data does not survive a restart.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
