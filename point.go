package qcp

/*
BSD 3-Clause License

Please refer to the License file in the repository root.
*/

import (
	"github.com/emiro85/QCustomPlot/series"
)

// GraphPoint is a single key-value sample of a graph-like plottable. Graphs
// are sorted by their key coordinate, so the sort key is the main key.
type GraphPoint struct {
	Key, Value float64
}

// SortKey returns the ordering coordinate of the point.
func (p GraphPoint) SortKey() float64 { return p.Key }

// FromSortKey constructs a probe point carrying only the sort key.
func (p GraphPoint) FromSortKey(sortKey float64) GraphPoint { return GraphPoint{Key: sortKey} }

// MainKey returns the key coordinate used for plotting.
func (p GraphPoint) MainKey() float64 { return p.Key }

// MainValue returns the value coordinate used for plotting.
func (p GraphPoint) MainValue() float64 { return p.Value }

// SortKeyIsMainKey reports that graph points sort by their main key.
func (p GraphPoint) SortKeyIsMainKey() bool { return true }

// ValueRange returns the span the point occupies on the value axis.
func (p GraphPoint) ValueRange() series.Range {
	return series.Range{Lower: p.Value, Upper: p.Value}
}

// CurvePoint is a sample of a parametric curve. Curves are sorted by the
// curve parameter T, not by the key coordinate, so consumers cannot assume
// monotonic keys (SortKeyIsMainKey is false).
type CurvePoint struct {
	T          float64 // curve parameter
	Key, Value float64
}

func (p CurvePoint) SortKey() float64 { return p.T }
func (p CurvePoint) FromSortKey(sortKey float64) CurvePoint { return CurvePoint{T: sortKey} }
func (p CurvePoint) MainKey() float64 { return p.Key }
func (p CurvePoint) MainValue() float64 { return p.Value }
func (p CurvePoint) SortKeyIsMainKey() bool { return false }
func (p CurvePoint) ValueRange() series.Range {
	return series.Range{Lower: p.Value, Upper: p.Value}
}

// FinancialPoint is an OHLC bar: one key coordinate with open, high, low and
// close values. Its value range spans the whole bar, not just a single
// value.
type FinancialPoint struct {
	Key                    float64
	Open, High, Low, Close float64
}

func (p FinancialPoint) SortKey() float64 { return p.Key }
func (p FinancialPoint) FromSortKey(sortKey float64) FinancialPoint {
	return FinancialPoint{Key: sortKey}
}
func (p FinancialPoint) MainKey() float64 { return p.Key }
func (p FinancialPoint) MainValue() float64 { return p.Close }
func (p FinancialPoint) SortKeyIsMainKey() bool { return true }
func (p FinancialPoint) ValueRange() series.Range {
	return series.Range{Lower: p.Low, Upper: p.High}
}
