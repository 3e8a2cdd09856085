package store

import (
	"sync"
)

// MemoryBackend keeps everything in a map. Used by tests and by the
// `memory` store backend setting; nothing survives a restart.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte

	// MaxBytes caps the total stored size when > 0. Writes past the
	// cap fail with ErrQuotaExceeded, mirroring a full durable store.
	MaxBytes int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	raw, ok := b.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

func (b *MemoryBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.MaxBytes > 0 {
		total := len(value)
		for k, v := range b.data {
			if k != key {
				total += len(v)
			}
		}
		if total > b.MaxBytes {
			return ErrQuotaExceeded
		}
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	b.data[key] = cp
	return nil
}

func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
