package series

// DataRange describes a half-open interval [Begin, End) of point indexes.
//
// It carries no reference to a container; external bookkeeping (selections,
// render segments) composes DataRanges and intersects them with a
// container's DataRange when needed.
type DataRange struct {
	Begin, End int
}

// Size returns the number of indexes in the interval.
func (r DataRange) Size() int {
	return r.End - r.Begin
}

// IsValid reports whether the interval is well-formed: a non-negative begin
// not past end. An empty range at a valid position is valid.
func (r DataRange) IsValid() bool {
	return r.End >= r.Begin && r.Begin >= 0
}

// IsEmpty reports whether the interval contains no indexes.
func (r DataRange) IsEmpty() bool {
	return r.Size() <= 0
}

// Contains reports whether other lies completely inside r.
func (r DataRange) Contains(other DataRange) bool {
	return other.Begin >= r.Begin && other.End <= r.End
}

// Adjusted returns the interval with changeBegin/changeEnd added to the
// respective bounds.
func (r DataRange) Adjusted(changeBegin, changeEnd int) DataRange {
	return DataRange{Begin: r.Begin + changeBegin, End: r.End + changeEnd}
}

// Intersection returns the overlap of r and other, or a zero range if they
// do not overlap.
func (r DataRange) Intersection(other DataRange) DataRange {
	result := DataRange{Begin: max(r.Begin, other.Begin), End: min(r.End, other.End)}
	if result.IsValid() {
		return result
	}
	return DataRange{}
}

// Bounded returns r constrained to lie within other; the interval is only
// ever contracted, never widened. If r lies completely outside other, the
// result is the empty range at other's nearest boundary.
func (r DataRange) Bounded(other DataRange) DataRange {
	result := r.Intersection(other)
	if !result.IsEmpty() {
		return result
	}
	if r.End <= other.Begin {
		return DataRange{Begin: other.Begin, End: other.Begin}
	}
	return DataRange{Begin: other.End, End: other.End}
}
