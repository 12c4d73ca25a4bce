package reportcache

import (
	"context"
	"sync"
	"time"

	"github.com/cwbudde/algo-fluor/efficiency"
)

type memoryEntry struct {
	report  *efficiency.Report
	expires time.Time
}

// Memory is an in-process cache. Expired entries are dropped on lookup.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get returns the report stored under key, if present and not expired.
func (m *Memory) Get(ctx context.Context, key string) (*efficiency.Report, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return e.report, true, nil
}

// Put stores report under key. A zero ttl never expires.
func (m *Memory) Put(ctx context.Context, key string, report *efficiency.Report, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{report: report}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
