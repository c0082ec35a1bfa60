package series

// Range is a span on one plot axis, delimited by a lower and an upper bound.
//
// The zero Range doubles as a "no restriction" sentinel in key-window
// arguments; it does not describe an empty window at coordinate zero there.
type Range struct {
	Lower, Upper float64
}

// Size returns the span covered by the range.
func (r Range) Size() float64 {
	return r.Upper - r.Lower
}

// IsZero reports whether both bounds are exactly zero, i.e. whether r is the
// "no restriction" sentinel.
func (r Range) IsZero() bool {
	return r.Lower == 0 && r.Upper == 0
}

// Contains reports whether value lies inside the range, bounds included.
func (r Range) Contains(value float64) bool {
	return value >= r.Lower && value <= r.Upper
}

// Normalized returns the range with bounds swapped into ascending order.
func (r Range) Normalized() Range {
	if r.Lower > r.Upper {
		return Range{Lower: r.Upper, Upper: r.Lower}
	}
	return r
}

// Expanded returns the range grown just enough to include other.
func (r Range) Expanded(other Range) Range {
	if other.Lower < r.Lower {
		r.Lower = other.Lower
	}
	if other.Upper > r.Upper {
		r.Upper = other.Upper
	}
	return r
}

// SignDomain restricts a range reduction to one sign of the coordinate axis.
//
// Logarithmic axes cannot display zero or mixed-sign data, so SignNegative
// and SignPositive both strictly exclude zero.
type SignDomain int

const (
	// SignBoth places no restriction on the coordinate sign.
	SignBoth SignDomain = iota
	// SignNegative admits strictly negative coordinates only.
	SignNegative
	// SignPositive admits strictly positive coordinates only.
	SignPositive
)

// admits reports whether v lies in the sign domain. NaN is never admitted by
// the restricted domains; SignBoth leaves NaN handling to the caller.
func (d SignDomain) admits(v float64) bool {
	switch d {
	case SignNegative:
		return v < 0
	case SignPositive:
		return v > 0
	}
	return true
}
