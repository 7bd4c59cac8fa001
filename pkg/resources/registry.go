// Package resources maps integer image handles to images.
//
// A [Registry] plays the role of an application's drawable table: hosts
// register files or in-memory images and hand the returned
// handle to a progress view, which resolves it when drawing.
package resources

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"sync"
)

// ErrUnknownHandle is returned when resolving a handle nothing was
// registered under.
var ErrUnknownHandle = errors.New("resources: unknown handle")

// Loader produces an image on demand.
type Loader func() (image.Image, error)

// Registry hands out handles for image sources and resolves them lazily.
// Valid handles are positive. It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	next    int
	loaders map[int]Loader
	paths   map[string]int
	cache   *ImageCache
}

// NewRegistry creates an empty registry with a cache.
func NewRegistry() *Registry {
	return &Registry{
		next:    1,
		loaders: make(map[int]Loader),
		paths:   make(map[string]int),
		cache:   NewImageCache(),
	}
}

// Register adds loader and returns its handle.
func (r *Registry) Register(loader Loader) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	r.loaders[h] = loader
	return h
}

// RegisterFile adds an image file. Registering the same cleaned path twice
// returns the same handle. The file is read on first resolve.
func (r *Registry) RegisterFile(path string) int {
	key := filepath.Clean(path)
	r.mu.Lock()
	if h, ok := r.paths[key]; ok {
		r.mu.Unlock()
		return h
	}
	r.mu.Unlock()

	h := r.Register(func() (image.Image, error) {
		return DecodeFile(key)
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.paths[key]; ok {
		delete(r.loaders, h)
		return existing
	}
	r.paths[key] = h
	return h
}

// RegisterImage adds an already decoded image.
func (r *Registry) RegisterImage(img image.Image) int {
	return r.Register(func() (image.Image, error) {
		if img == nil {
			return nil, errors.New("resources: nil image")
		}
		return img, nil
	})
}

// Replace swaps the source behind an existing handle and drops its cached
// image.
func (r *Registry) Replace(handle int, loader Loader) error {
	r.mu.Lock()
	if _, ok := r.loaders[handle]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("replace %d: %w", handle, ErrUnknownHandle)
	}
	r.loaders[handle] = loader
	r.mu.Unlock()
	r.cache.Forget(handle)
	return nil
}

// Valid reports whether handle is registered.
func (r *Registry) Valid(handle int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loaders[handle]
	return ok
}

// Resolve returns the image for handle, loading it on first use.
func (r *Registry) Resolve(handle int) (image.Image, error) {
	r.mu.Lock()
	loader, ok := r.loaders[handle]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("resolve %d: %w", handle, ErrUnknownHandle)
	}
	img, err := r.cache.Get(handle, loader)
	if err != nil {
		return nil, fmt.Errorf("resolve %d: %w", handle, err)
	}
	return img, nil
}
