// pkg/resource/cache.go
package resource

import (
	"container/list"
	"fmt"
	"sync"
)

// DefaultSpriteCapacity bounds the sprite cache. Twenty rendered zoom levels
// cover normal zooming without regenerating textures every frame.
const DefaultSpriteCapacity = 20

// SpriteCache is a bounded least-recently-used cache for rendered sprites.
// Renderers rasterize bodies per zoom level; the cache keeps the recent
// levels and drops the stalest when full.
type SpriteCache struct {
	capacity int

	mu    sync.Mutex
	order *list.List // front = most recent
	items map[string]*list.Element
}

type cacheEntry struct {
	key    string
	sprite any
}

// NewSpriteCache creates a cache bounded to capacity entries. A capacity of
// zero or less falls back to DefaultSpriteCapacity.
func NewSpriteCache(capacity int) *SpriteCache {
	if capacity <= 0 {
		capacity = DefaultSpriteCapacity
	}
	return &SpriteCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// SpriteKey builds the cache key for a named sprite at a zoom level. Zoom is
// quantized to three decimals so nearby zoom levels share one rendering.
func SpriteKey(name string, zoom float64) string {
	return fmt.Sprintf("%s@%.3f", name, zoom)
}

// Get returns the cached sprite for key and marks it most recently used.
func (c *SpriteCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).sprite, true
}

// Put stores a sprite under key, evicting the least recently used entry
// when the cache is full. Storing an existing key replaces its sprite.
func (c *SpriteCache) Put(key string, sprite any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*cacheEntry).sprite = sprite
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, sprite: sprite})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

// Len returns the number of cached sprites.
func (c *SpriteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear empties the cache.
func (c *SpriteCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}
