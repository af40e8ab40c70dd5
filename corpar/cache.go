package corpar

import "sync"

// Cache is the lazily growing table of fallback prediction results,
// kept separate from the immutable fitted model.
//
// The fitted rule set never changes after Fit; the cache is the only
// mutable state touched by Predict, and it is guarded by a mutex, so
// concurrent Predict calls against one Classifier are safe. A Cache may
// be shared between classifiers operating over the same pattern space;
// Fit clears the cache it owns.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]int
}

// NewCache returns an empty prediction cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]int)}
}

// Get returns the cached target for pattern, if present.
func (c *Cache) Get(pattern []int) (int, bool) {
	return c.get(patternKey(pattern))
}

// Len returns the number of cached fallback results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache) get(key string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]

	return v, ok
}

func (c *Cache) put(key string, target int) {
	c.mu.Lock()
	c.entries[key] = target
	c.mu.Unlock()
}

func (c *Cache) reset() {
	c.mu.Lock()
	c.entries = make(map[string]int)
	c.mu.Unlock()
}
