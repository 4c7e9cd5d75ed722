package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryKV is an in-memory KV used when Redis is not configured and in tests.
type MemoryKV struct {
	mu    sync.RWMutex
	items map[string]memoryItem

	// Now is the clock used for expiry checks. Tests may override it.
	Now func() time.Time
}

type memoryItem struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// NewMemory constructs an empty MemoryKV.
func NewMemory() *MemoryKV {
	return &MemoryKV{
		items: make(map[string]memoryItem),
		Now:   time.Now,
	}
}

// Get returns the value for key, or ErrMiss if absent or expired.
func (m *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrMiss
	}
	if !item.expiresAt.IsZero() && m.Now().After(item.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return "", ErrMiss
	}
	return item.value, nil
}

// Set stores value under key with no expiry.
func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = memoryItem{value: value}
	m.mu.Unlock()
	return nil
}

// SetTTL stores value under key, expiring after ttl.
func (m *MemoryKV) SetTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = memoryItem{value: value, expiresAt: m.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// Delete removes a key. Used by tests to simulate eviction.
func (m *MemoryKV) Delete(key string) {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
}

var _ KV = (*MemoryKV)(nil)
