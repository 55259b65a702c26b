package assets

import (
	"image"
	"sync"
)

// cache memoizes decoded part images per path for the lifetime of a run,
// so a grid sweep does not re-read the same files for every tile.
type cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

func newCache() *cache {
	return &cache{items: make(map[string]*cacheEntry)}
}

// load returns the decoded image for path, decoding at most once.
func (c *cache) load(path string) (*image.NRGBA, error) {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	img, err := Load(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()

	return img, err
}
