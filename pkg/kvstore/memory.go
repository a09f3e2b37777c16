package kvstore

import (
	"context"
	"sync"
)

// MemoryBackend keeps values in a process-local map. A positive quota caps the
// total number of bytes (keys + values) it will hold.
type MemoryBackend struct {
	mu     sync.RWMutex
	data   map[string]string
	quota  int
	usedBy int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func NewMemoryBackendWithQuota(quota int) *MemoryBackend {
	b := NewMemoryBackend()
	b.quota = quota
	return b
}

func (b *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (b *MemoryBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	used := b.usedBy
	if old, ok := b.data[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)

	if b.quota > 0 && used > b.quota {
		return ErrQuotaExceeded
	}

	b.data[key] = value
	b.usedBy = used
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.data[key]; ok {
		b.usedBy -= len(key) + len(old)
		delete(b.data, key)
	}
	return nil
}
