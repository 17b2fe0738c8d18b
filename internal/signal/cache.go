package signal

import (
	"context"
	"sync"
	"time"

	"HalalRadar/internal/model"
)

// refreshGuard is the minimum interval between regenerations. Deliberately a
// constant rather than the configured refresh interval, which only drives the
// scheduler cadence.
const refreshGuard = 60 * time.Second

// Generator produces a fresh signal batch.
type Generator func(ctx context.Context) ([]model.Signal, error)

// Cache holds the latest signal batch together with its refresh timestamp.
// The pair is always read and replaced together, so a reader never sees a
// batch paired with a foreign timestamp.
type Cache struct {
	mu          sync.Mutex
	signals     []model.Signal
	refreshedAt time.Time
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Latest returns the cached batch and when it was generated.
func (c *Cache) Latest() ([]model.Signal, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.signals, c.refreshedAt
}

// MaybeRefresh regenerates the batch through gen unless the cached one is
// younger than the guard interval. The generator runs without holding the
// lock so calendar and universe queries are never stalled by a slow fetch;
// the batch and timestamp are then swapped in as one unit. On generator error
// the previous batch is kept. Two callers passing the guard in the same
// instant may both run the generator; the later swap wins and the pair stays
// consistent, so the duplicate fetch is accepted rather than serialized.
func (c *Cache) MaybeRefresh(ctx context.Context, gen Generator) ([]model.Signal, bool, error) {
	c.mu.Lock()
	if !c.refreshedAt.IsZero() && time.Since(c.refreshedAt) < refreshGuard {
		signals := c.signals
		c.mu.Unlock()
		return signals, false, nil
	}
	c.mu.Unlock()

	signals, err := gen(ctx)
	if err != nil {
		stale, _ := c.Latest()
		return stale, false, err
	}

	now := time.Now().UTC()
	c.mu.Lock()
	c.signals = signals
	c.refreshedAt = now
	c.mu.Unlock()
	return signals, true, nil
}
