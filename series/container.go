package series

import (
	"slices"
	"sort"
)

// Container is a sorted, contiguous series of points, ordered by their sort
// key. It is generic over any point type satisfying Point.
//
// Internally the backing buffer is split into three zones:
//
//	[ prefix pool | live range | suffix capacity ]
//
// The prefix pool is unused headroom in front of the live range, grown in
// generations so that bursts of prepends stay cheap; the suffix capacity is
// the slice's spare capacity beyond the live range. Both pools are invisible
// to readers: indexes, iteration and queries all address the live range
// only.
//
// A Container must not be mutated concurrently; it assumes exclusive
// ownership for the duration of any call.
type Container[T Point[T]] struct {
	autoSqueeze bool

	data              []T // prefix pool + live range; suffix pool is spare capacity
	preallocSize      int
	preallocIteration int
}

// New creates an empty container with auto-squeeze enabled.
func New[T Point[T]]() *Container[T] {
	return &Container[T]{autoSqueeze: true}
}

// Len returns the number of live points.
func (c *Container[T]) Len() int {
	return len(c.data) - c.preallocSize
}

// IsEmpty reports whether the container holds no points.
func (c *Container[T]) IsEmpty() bool {
	return c.Len() == 0
}

// AutoSqueeze reports whether unused pool memory is released automatically.
func (c *Container[T]) AutoSqueeze() bool {
	return c.autoSqueeze
}

// SetAutoSqueeze sets whether the container automatically decides when to
// release memory from its pools after points are removed. Enabled by
// default; with auto-squeeze disabled, pool memory is only released through
// explicit Squeeze calls. Re-enabling runs one squeeze pass immediately.
func (c *Container[T]) SetAutoSqueeze(enabled bool) {
	if c.autoSqueeze == enabled {
		return
	}
	c.autoSqueeze = enabled
	if c.autoSqueeze {
		c.performAutoSqueeze()
	}
}

// live returns the live range of the backing buffer.
func (c *Container[T]) live() []T {
	return c.data[c.preallocSize:]
}

// probe builds a search probe carrying only the given sort key.
func (c *Container[T]) probe(sortKey float64) T {
	var p T
	return p.FromSortKey(sortKey)
}

// lowerBound returns the live index of the first point whose sort key is not
// less than the probe's, or Len() if there is none.
func (c *Container[T]) lowerBound(p T) int {
	live := c.live()
	return sort.Search(len(live), func(i int) bool { return !lessBySortKey(live[i], p) })
}

// upperBound returns the live index of the first point whose sort key is
// greater than the probe's, or Len() if there is none.
func (c *Container[T]) upperBound(p T) int {
	live := c.live()
	return sort.Search(len(live), func(i int) bool { return lessBySortKey(p, live[i]) })
}

// Set replaces the current content with points. The container takes
// ownership of the slice; the caller must not touch it afterwards.
//
// If the points are guaranteed to already be in ascending sort key order,
// pass alreadySorted=true to skip the sorting run.
func (c *Container[T]) Set(points []T, alreadySorted bool) {
	c.data = points
	c.preallocSize = 0
	c.preallocIteration = 0
	if !alreadySorted {
		c.Sort()
	}
}

// SetContainer replaces the current content with a copy of other's points.
func (c *Container[T]) SetContainer(other *Container[T]) {
	c.Clear()
	c.AddContainer(other)
}

// AddContainer adds a copy of other's points to this container. Containers
// are always sorted, so this takes the batched merge-add paths of Add with
// the sorted precondition implied.
func (c *Container[T]) AddContainer(other *Container[T]) {
	if other.IsEmpty() {
		return
	}
	n := other.Len()
	oldSize := c.Len()
	if oldSize > 0 && !lessBySortKey(c.live()[0], other.live()[n-1]) {
		// incoming batch sorts entirely before the existing points
		c.prepend(other.live())
		return
	}
	c.data = append(c.data, other.live()...)
	live := c.live()
	if oldSize > 0 && !lessBySortKey(live[oldSize-1], live[oldSize]) {
		mergeBySortKey(live, oldSize)
	}
}

// Add adds a batch of points to the current content.
//
// The common cases are cheap: a batch that sorts entirely before the
// existing points (with alreadySorted asserted) is copied into the prefix
// pool, and a batch that sorts entirely after them is appended without any
// merge. Only genuinely interleaving batches pay for a sort of the appended
// subrange plus a stable in-place merge. The batch slice is never retained.
//
// If the points are guaranteed to already be in ascending sort key order,
// pass alreadySorted=true to skip the sorting run.
func (c *Container[T]) Add(points []T, alreadySorted bool) {
	if len(points) == 0 {
		return
	}
	if c.IsEmpty() {
		c.Set(slices.Clone(points), alreadySorted)
		return
	}
	n := len(points)
	oldSize := c.Len()
	if alreadySorted && !lessBySortKey(c.live()[0], points[n-1]) {
		c.prepend(points)
		return
	}
	c.data = append(c.data, points...)
	live := c.live()
	if !alreadySorted {
		slices.SortFunc(live[oldSize:], cmpBySortKey[T])
	}
	if !lessBySortKey(live[oldSize-1], live[oldSize]) {
		mergeBySortKey(live, oldSize)
	}
}

// prepend writes a batch whose keys all sort before the live range into the
// prefix pool, growing the pool if it cannot hold the batch.
func (c *Container[T]) prepend(points []T) {
	n := len(points)
	if c.preallocSize < n {
		c.preallocateGrow(n)
	}
	c.preallocSize -= n
	copy(c.live(), points)
}

// mergeBySortKey merges the adjacent sorted runs live[:mid] and live[mid:]
// into one sorted run. The merge is stable: on equal sort keys, points of
// the left run stay in front.
func mergeBySortKey[T Point[T]](live []T, mid int) {
	assert(mid > 0 && mid < len(live), "mergeBySortKey needs two non-empty runs")
	tail := slices.Clone(live[mid:])
	i, j, k := mid-1, len(tail)-1, len(live)-1
	for j >= 0 {
		if i >= 0 && lessBySortKey(tail[j], live[i]) {
			live[k] = live[i]
			i--
		} else {
			live[k] = tail[j]
			j--
		}
		k--
	}
}

// Insert adds a single point, keeping the container sorted.
//
// Appending and prepending are amortized O(1) through the suffix capacity
// and the prefix pool; a true mid-series insert needs an O(log n) search
// plus an O(n) shift. A point whose sort key equals existing keys lands
// after all of them.
func (c *Container[T]) Insert(p T) {
	switch {
	case c.IsEmpty() || !lessBySortKey(p, c.live()[c.Len()-1]):
		c.data = append(c.data, p)
	case lessBySortKey(p, c.live()[0]):
		if c.preallocSize < 1 {
			c.preallocateGrow(1)
		}
		c.preallocSize--
		c.data[c.preallocSize] = p
	default:
		at := c.preallocSize + c.upperBound(p)
		var zero T
		c.data = append(c.data, zero)
		copy(c.data[at+1:], c.data[at:len(c.data)-1])
		c.data[at] = p
	}
}

// RemoveBefore removes all points with sort keys less than or equal to
// sortKey.
//
// The points are not physically erased; the live range start moves into the
// prefix pool, and auto-squeeze reclaims the memory later if the pool grows
// out of proportion.
func (c *Container[T]) RemoveBefore(sortKey float64) {
	c.preallocSize += c.upperBound(c.probe(sortKey))
	if c.autoSqueeze {
		c.performAutoSqueeze()
	}
}

// RemoveAfter removes all points with sort keys greater than or equal to
// sortKey. The erased tail becomes suffix capacity.
func (c *Container[T]) RemoveAfter(sortKey float64) {
	at := c.lowerBound(c.probe(sortKey))
	c.data = c.data[:c.preallocSize+at]
	if c.autoSqueeze {
		c.performAutoSqueeze()
	}
}

// Remove removes all points with sort keys between from and to, inclusive of
// exact boundary matches on both ends. Does nothing if from >= to; for a
// single point with exactly known key use RemoveKey.
func (c *Container[T]) Remove(from, to float64) {
	if from >= to || c.IsEmpty() {
		return
	}
	i := c.preallocSize + c.lowerBound(c.probe(from))
	j := c.preallocSize + c.upperBound(c.probe(to))
	if i < j {
		c.data = append(c.data[:i], c.data[j:]...)
	}
	if c.autoSqueeze {
		c.performAutoSqueeze()
	}
}

// RemoveKey removes the single point whose sort key equals sortKey exactly.
// If the key is not known with binary precision, use Remove with a small
// fuzziness interval instead.
func (c *Container[T]) RemoveKey(sortKey float64) {
	at := c.lowerBound(c.probe(sortKey))
	if live := c.live(); at < len(live) && live[at].SortKey() == sortKey {
		if at == 0 {
			// reclassify into the prefix pool instead of shifting the live range
			c.preallocSize++
		} else {
			abs := c.preallocSize + at
			c.data = append(c.data[:abs], c.data[abs+1:]...)
		}
	}
	if c.autoSqueeze {
		c.performAutoSqueeze()
	}
}

// Clear removes all points, releases the backing buffer and resets the
// prefix pool growth generation.
func (c *Container[T]) Clear() {
	c.data = nil
	c.preallocSize = 0
	c.preallocIteration = 0
}

// Sort re-sorts all points by their sort key.
//
// The regular mutation methods keep the container sorted at all times, so a
// full resort is never necessary on their account. Sort exists for callers
// of RawPoints that modified sort keys in place: they must call it before
// using any other container method.
func (c *Container[T]) Sort() {
	slices.SortFunc(c.live(), cmpBySortKey[T])
}

// Squeeze releases unused pool memory. With auto-squeeze enabled (the
// default) the container calls it on its own and manual squeezing should not
// be necessary.
//
// prefix compacts the live range to the buffer start, dropping the prefix
// pool and resetting its growth generation; suffix releases spare backing
// capacity beyond the live range.
func (c *Container[T]) Squeeze(prefix, suffix bool) {
	if prefix {
		if c.preallocSize > 0 {
			n := c.Len()
			copy(c.data, c.data[c.preallocSize:])
			c.data = c.data[:n]
			c.preallocSize = 0
		}
		c.preallocIteration = 0
	}
	if suffix && cap(c.data) > len(c.data) {
		trimmed := make([]T, len(c.data))
		copy(trimmed, c.data)
		c.data = trimmed
	}
}
