package attachment

import (
	"runtime"

	"go.uber.org/atomic"
)

// Handle is a shared reference to an attached value. It keeps the value
// alive after the attachment is removed or replaced, until Release or until
// the Handle itself becomes unreachable.
type Handle[T any] struct {
	c        *cell
	ptr      *T
	released atomic.Bool
	cleanup  runtime.Cleanup
}

func newHandle[T any](c *cell) *Handle[T] {
	h := &Handle[T]{c: c, ptr: c.ptr.(*T)}
	h.cleanup = runtime.AddCleanup(h, (*cell).release, c)
	return h
}

// Value returns the attached value, or the zero T once h is released.
func (h *Handle[T]) Value() T {
	if h.released.Load() {
		var zero T
		return zero
	}
	return *h.ptr
}

// Refs returns the number of holders currently sharing the value, counting
// sets and handles alike.
func (h *Handle[T]) Refs() int {
	return int(h.c.refs.Load())
}

// Clone returns another handle to the same value. It returns nil once h has
// been released.
func (h *Handle[T]) Clone() *Handle[T] {
	if h.released.Load() {
		return nil
	}
	return newHandle[T](h.c.acquire())
}

// Release gives up this handle's share of the value. Only the first call
// has an effect.
func (h *Handle[T]) Release() {
	if h.released.CompareAndSwap(false, true) {
		h.cleanup.Stop()
		h.c.release()
	}
}
