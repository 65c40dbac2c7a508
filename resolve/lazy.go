package resolve

import "sync"

// lazyCell is an explicit lazy-memoization cell: the value is computed at
// most once per cell, on first read, unless overwritten via set.
type lazyCell[T any] struct {
	mu    sync.Mutex
	done  bool
	value T
}

// get returns the memoized value, computing it on first access. The compute
// function runs under the cell lock, so concurrent readers observe exactly
// one invocation.
func (c *lazyCell[T]) get(compute func() T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done {
		c.value = compute()
		c.done = true
	}
	return c.value
}

// set overwrites the memoized value, marking the cell computed.
func (c *lazyCell[T]) set(v T) {
	c.mu.Lock()
	c.value = v
	c.done = true
	c.mu.Unlock()
}
