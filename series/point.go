package series

import "cmp"

// Point is the capability set a data record must provide to be stored in a
// Container. The container is otherwise oblivious to the record's layout.
//
// SortKey is the field defining the container order. MainKey and MainValue
// form the coordinate pair used for plotting and range reduction; the main
// key may differ from the sort key (parametric curves sort by the curve
// parameter). SortKeyIsMainKey is a static capability flag: it must return
// the same answer for every value of the type, including the zero value, and
// a true answer guarantees monotonic main keys which enables fast-path range
// reductions. FromSortKey constructs a minimal probe record carrying only
// the given sort key; it drives the container's binary searches. ValueRange
// is the span the record contributes on the value axis, allowing
// multi-valued records such as OHLC bars.
//
// Point types should be small value types; the container stores them by
// value and calls SortKeyIsMainKey and FromSortKey on zero values.
type Point[T any] interface {
	SortKey() float64
	FromSortKey(sortKey float64) T
	MainKey() float64
	MainValue() float64
	SortKeyIsMainKey() bool
	ValueRange() Range
}

// lessBySortKey reports whether a's sort key is less than b's.
func lessBySortKey[T Point[T]](a, b T) bool {
	return a.SortKey() < b.SortKey()
}

func cmpBySortKey[T Point[T]](a, b T) int {
	return cmp.Compare(a.SortKey(), b.SortKey())
}

// sortKeyIsMainKey queries the static capability flag off a zero value.
func sortKeyIsMainKey[T Point[T]]() bool {
	var probe T
	return probe.SortKeyIsMainKey()
}
