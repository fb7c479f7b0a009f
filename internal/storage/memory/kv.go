// Package memory is an in-process KVStore used in tests and local development.
package memory

import (
	"context"
	"sync"
	"time"

	"marketplace-bff/internal/storage"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// KV is a mutex-guarded map honoring TTLs.
type KV struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

// NewKV creates an empty store.
func NewKV() *KV {
	return &KV{data: make(map[string]entry), now: time.Now}
}

var _ storage.KVStore = (*KV)(nil)

func (m *KV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.data[key]
	if !ok || (!e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)) {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (m *KV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.data[key] = e
	m.mu.Unlock()
	return nil
}

func (m *KV) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.data, k)
	}
	m.mu.Unlock()
	return nil
}

// Raw returns the stored bytes without copying or expiry checks.
func (m *KV) Raw(key string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key].value
}
