package syllable

import "sync"

// Cached memoizes another estimator. Estimates are deterministic per text,
// so cached values never go stale. Safe for concurrent use.
type Cached struct {
	inner interface{ Estimate(string) int }

	mu     sync.RWMutex
	counts map[string]int
}

// NewCached wraps est with a memoizing layer.
func NewCached(est interface{ Estimate(string) int }) *Cached {
	return &Cached{inner: est, counts: make(map[string]int)}
}

// Estimate returns the cached count for text, computing it on first use.
func (c *Cached) Estimate(text string) int {
	c.mu.RLock()
	count, ok := c.counts[text]
	c.mu.RUnlock()
	if ok {
		return count
	}

	count = c.inner.Estimate(text)

	c.mu.Lock()
	c.counts[text] = count
	c.mu.Unlock()
	return count
}
