package series

import "iter"

// All returns a forward iterator over the live points in sort key order.
//
// The iterator borrows the backing buffer: it must not be used across a
// mutating container call, which may shift or reallocate the buffer.
func (c *Container[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range c.live() {
			if !yield(p) {
				return
			}
		}
	}
}

// ForEach walks the live points in sort key order.
//
// Iteration stops early if fn returns false.
func (c *Container[T]) ForEach(fn func(p T) bool) {
	if fn == nil {
		return
	}
	for _, p := range c.live() {
		if !fn(p) {
			return
		}
	}
}

// RawPoints exposes the live range for direct in-place manipulation.
//
// Changing anything but the sort key is safe from the container's
// perspective. Great care must be taken if sort keys are modified: the
// container does not re-sort or validate on its own, so the caller must call
// Sort before invoking any other container method. A violated sort order is
// not detected; binary searches over unsorted data silently return wrong
// results (Check can be used to verify in tests).
//
// The slice aliases the backing buffer and is invalidated by any mutating
// container call.
func (c *Container[T]) RawPoints() []T {
	return c.live()
}
