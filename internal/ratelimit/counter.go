package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Counter counts hits for key inside a fixed window and returns the count
// including this hit.
type Counter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// MemoryCounter keeps windows in process memory. Limits are per instance.
type MemoryCounter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	count int64
	start time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (m *MemoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(now, window)

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) > window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	b.count++
	return b.count, nil
}

// sweep drops buckets whose window has ended, at most once per window.
func (m *MemoryCounter) sweep(now time.Time, window time.Duration) {
	if now.Sub(m.lastSweep) <= window {
		return
	}
	for key, b := range m.buckets {
		if now.Sub(b.start) > window {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}
