package series

// preallocateGrow grows the prefix pool to hold at least minimumPreallocSize
// slots. Depending on the growth history the pool grows by more than
// requested, doubling the bonus headroom each generation (bounded between 4
// and 32756 extra slots), so that bursts of consecutive prepends trigger few
// reallocations. No-op if the pool already covers the request.
func (c *Container[T]) preallocateGrow(minimumPreallocSize int) {
	if minimumPreallocSize <= c.preallocSize {
		return
	}
	newPreallocSize := minimumPreallocSize
	newPreallocSize += (1 << min(max(c.preallocIteration+4, 4), 15)) - 12
	c.preallocIteration++

	sizeDifference := newPreallocSize - c.preallocSize
	oldLen := len(c.data)
	c.data = append(c.data, make([]T, sizeDifference)...)
	copy(c.data[c.preallocSize+sizeDifference:], c.data[c.preallocSize:oldLen])
	c.preallocSize = newPreallocSize
}

// performAutoSqueeze decides, from the total backing capacity and the pool
// sizes, whether releasing pool memory is worthwhile, and calls Squeeze
// accordingly. Called after every removal while auto-squeeze is enabled.
//
// The thresholds leave a wide hysteresis gap to the growth strategies of
// append and preallocateGrow: alternating add/remove sequences near a
// threshold must not oscillate between growing and squeezing on every call.
func (c *Container[T]) performAutoSqueeze() {
	totalAlloc := cap(c.data)
	suffixSize := totalAlloc - len(c.data)
	usedSize := c.Len()
	var shrinkPrefix, shrinkSuffix bool
	switch {
	case totalAlloc > 650000:
		// large allocations shrink earlier with respect to the used size
		shrinkSuffix = float64(suffixSize) > float64(usedSize)*1.5
		shrinkPrefix = c.preallocSize*10 > usedSize
	case totalAlloc > 1000:
		// be generous with pool memory in the mid range; below 1k points
		// squeezing isn't worth the reallocation churn at all
		shrinkSuffix = suffixSize > usedSize*5
		shrinkPrefix = float64(c.preallocSize) > float64(usedSize)*1.5
	}
	if shrinkPrefix || shrinkSuffix {
		tracer().Debugf("auto-squeeze: cap=%d live=%d prefix=%d suffix=%d (prefix=%v suffix=%v)",
			totalAlloc, usedSize, c.preallocSize, suffixSize, shrinkPrefix, shrinkSuffix)
		c.Squeeze(shrinkPrefix, shrinkSuffix)
	}
}
