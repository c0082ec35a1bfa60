package series

import "math"

// FindBegin returns the index of the first point with a sort key not less
// than sortKey. With expanded=true the index steps one position towards the
// container start unless already there, so that a line segment entering the
// window [sortKey, ...] from the left still has its outside anchor point.
//
// Use together with FindEnd to iterate the points of a key window. For an
// empty container, Len() (the end sentinel) is returned.
func (c *Container[T]) FindBegin(sortKey float64, expanded bool) int {
	if c.IsEmpty() {
		return c.Len()
	}
	at := c.lowerBound(c.probe(sortKey))
	if expanded && at > 0 {
		at--
	}
	return at
}

// FindEnd returns the index just past the last point with a sort key not
// greater than sortKey. With expanded=true the index steps one position
// towards the container end unless already there. For an empty container,
// Len() is returned.
func (c *Container[T]) FindEnd(sortKey float64, expanded bool) int {
	if c.IsEmpty() {
		return c.Len()
	}
	at := c.upperBound(c.probe(sortKey))
	if expanded && at < c.Len() {
		at++
	}
	return at
}

// At returns the point at index. The second return value is false when the
// index lies outside [0, Len()), the index form of the end sentinel; the
// container never panics on out-of-range access.
func (c *Container[T]) At(index int) (T, bool) {
	if index < 0 || index >= c.Len() {
		var zero T
		return zero, false
	}
	return c.live()[index], true
}

// DataRange returns the index interval covering all points, [0, Len()).
func (c *Container[T]) DataRange() DataRange {
	return DataRange{Begin: 0, End: c.Len()}
}

// LimitToDataRange narrows the index pair begin, end to lie within both the
// container's valid bounds and want. The pair is only ever contracted, never
// widened, and want itself need not lie within the container's bounds.
func (c *Container[T]) LimitToDataRange(begin, end int, want DataRange) (int, int) {
	r := DataRange{Begin: begin, End: end}.Bounded(want.Bounded(c.DataRange()))
	return r.Begin, r.End
}

// KeyRange returns the span of the main key over all points whose main value
// is not NaN, restricted to signDomain. found reports whether any point
// qualified; if it is false the returned range must not be used.
//
// When the point type's sort key is its main key, main keys are monotonic
// and the unrestricted reduction only inspects the outermost non-NaN points
// instead of scanning the whole series.
func (c *Container[T]) KeyRange(signDomain SignDomain) (rng Range, found bool) {
	if c.IsEmpty() {
		return Range{}, false
	}
	live := c.live()
	var haveLower, haveUpper bool
	if signDomain == SignBoth && sortKeyIsMainKey[T]() {
		for i := 0; i < len(live); i++ { // first non-NaN going up from the left
			if !math.IsNaN(live[i].MainValue()) {
				rng.Lower = live[i].MainKey()
				haveLower = true
				break
			}
		}
		for i := len(live) - 1; i >= 0; i-- { // first non-NaN going down from the right
			if !math.IsNaN(live[i].MainValue()) {
				rng.Upper = live[i].MainKey()
				haveUpper = true
				break
			}
		}
		return rng, haveLower && haveUpper
	}
	for _, p := range live {
		if math.IsNaN(p.MainValue()) {
			continue
		}
		current := p.MainKey()
		if !signDomain.admits(current) {
			continue
		}
		if current < rng.Lower || !haveLower {
			rng.Lower = current
			haveLower = true
		}
		if current > rng.Upper || !haveUpper {
			rng.Upper = current
			haveUpper = true
		}
	}
	return rng, haveLower && haveUpper
}

// ValueRange returns the span of the points' value ranges, restricted to
// signDomain, optionally restricted to points whose main key lies in
// inKeyRange. The zero Range means "no key restriction". NaN value bounds
// are ignored. found reports whether any bound qualified.
//
// With a key restriction and a point type whose sort key is its main key,
// the scan is narrowed by binary search first.
func (c *Container[T]) ValueRange(signDomain SignDomain, inKeyRange Range) (rng Range, found bool) {
	if c.IsEmpty() {
		return Range{}, false
	}
	restrictKeyRange := !inKeyRange.IsZero()
	live := c.live()
	begin, end := 0, len(live)
	if restrictKeyRange && sortKeyIsMainKey[T]() {
		begin = c.FindBegin(inKeyRange.Lower, false)
		end = c.FindEnd(inKeyRange.Upper, false)
	}
	var haveLower, haveUpper bool
	for _, p := range live[begin:end] {
		if restrictKeyRange {
			if k := p.MainKey(); k < inKeyRange.Lower || k > inKeyRange.Upper {
				continue
			}
		}
		current := p.ValueRange()
		if (current.Lower < rng.Lower || !haveLower) && signDomain.admits(current.Lower) && !math.IsNaN(current.Lower) {
			rng.Lower = current.Lower
			haveLower = true
		}
		if (current.Upper > rng.Upper || !haveUpper) && signDomain.admits(current.Upper) && !math.IsNaN(current.Upper) {
			rng.Upper = current.Upper
			haveUpper = true
		}
	}
	return rng, haveLower && haveUpper
}
