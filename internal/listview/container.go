package listview

import "sync"

// Container holds the mirrored collection for one screen together with its
// loading flag and error slot. Fetches are generation-counted: Begin hands
// out a generation, and Complete ignores any result whose generation is not
// the latest one issued, so a slow response can never overwrite the state a
// newer fetch already produced.
type Container[T any] struct {
	mu         sync.Mutex
	items      []T
	loading    bool
	err        error
	generation uint64
	loaded     bool
}

// Begin marks the container loading and returns the generation the caller
// must present back to Complete.
func (c *Container[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.loading = true
	return c.generation
}

// Complete installs a fetch result. A stale generation is discarded and
// Complete reports false. On failure the collection resets to empty and the
// error is kept for display.
func (c *Container[T]) Complete(generation uint64, items []T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	c.loading = false
	c.loaded = true
	if err != nil {
		c.items = []T{}
		c.err = err
		return true
	}
	c.items = items
	c.err = nil
	return true
}

// Snapshot returns a copy of the current items plus the loading flag and the
// last fetch error. The copy keeps later patches from mutating a slice a
// caller is still reading.
func (c *Container[T]) Snapshot() ([]T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items, c.loading, c.err
}

// Loaded reports whether any fetch has completed since construction.
func (c *Container[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Patch applies an in-place transformation to the held items, used for
// optimistic updates after a confirmed mutation.
func (c *Container[T]) Patch(fn func([]T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
}
