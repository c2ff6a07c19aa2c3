// Package cache provides short-TTL snapshot caches for the dashboard stats
// read path. The caches bound staleness only; correctness of mutating
// operations never depends on them.
package cache

import (
	"context"
	"sync"
	"time"

	"hrms/internal/dashboard/models"
)

// InMemory caches the latest stats snapshot with TTL expiration.
type InMemory struct {
	mu       sync.RWMutex
	stats    *models.Stats
	storedAt time.Time
	ttl      time.Duration
}

// NewInMemory creates an in-memory snapshot cache with the given TTL.
func NewInMemory(ttl time.Duration) *InMemory {
	return &InMemory{ttl: ttl}
}

// Get returns the cached snapshot, or nil when absent or expired.
func (c *InMemory) Get(_ context.Context) (*models.Stats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.stats == nil || time.Since(c.storedAt) >= c.ttl {
		return nil, nil
	}
	snapshot := *c.stats
	return &snapshot, nil
}

// Set stores the snapshot, restarting the TTL window.
func (c *InMemory) Set(_ context.Context, stats *models.Stats) error {
	if stats == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := *stats
	c.stats = &snapshot
	c.storedAt = time.Now()
	return nil
}
