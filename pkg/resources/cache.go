package resources

import (
	"errors"
	"image"
	"sync"
)

// ImageCache caches decoded images by handle.
//
// To avoid holding the lock during I/O, concurrent requests for the same
// uncached handle may invoke the loader more than once. Only one result is
// stored; duplicates are discarded.
type ImageCache struct {
	mu    sync.Mutex
	items map[int]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{items: make(map[int]image.Image)}
}

// Get returns a cached image or loads and caches it using the loader.
//
// If the cache is nil, the loader is invoked directly.
func (c *ImageCache) Get(handle int, loader Loader) (image.Image, error) {
	if loader == nil {
		return nil, errors.New("resources: loader is nil")
	}
	if c == nil {
		return loader()
	}

	c.mu.Lock()
	if img := c.items[handle]; img != nil {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	img, err := loader()
	if err != nil || img == nil {
		return img, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing := c.items[handle]; existing != nil {
		return existing, nil
	}
	c.items[handle] = img
	return img, nil
}

// Forget drops the cached image for handle.
func (c *ImageCache) Forget(handle int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.items, handle)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
