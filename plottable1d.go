package qcp

/*
BSD 3-Clause License

Please refer to the License file in the repository root.
*/

import (
	"github.com/emiro85/QCustomPlot/series"
)

// Interface1D is the read-only, index-based access contract one-dimensional
// plottables expose to layers that do not know the concrete point type
// (axis rescaling, selection handling, data export).
//
// Index arguments outside [0, DataCount()) resolve to zero-value results,
// never to a panic or error.
type Interface1D interface {
	DataCount() int
	DataSortKey(index int) float64
	DataMainKey(index int) float64
	DataMainValue(index int) float64
	DataValueRange(index int) series.Range
	SortKeyIsMainKey() bool
	FindBegin(sortKey float64, expanded bool) int
	FindEnd(sortKey float64, expanded bool) int
}

// Plottable1D adapts a series.Container to Interface1D. It is a thin
// pass-through: all storage and search work happens in the container.
type Plottable1D[P series.Point[P]] struct {
	data *series.Container[P]
}

// NewPlottable1D creates a plottable holding a fresh, empty container.
func NewPlottable1D[P series.Point[P]]() *Plottable1D[P] {
	return &Plottable1D[P]{data: series.New[P]()}
}

// Wrap1D adapts an existing container. The plottable borrows the container;
// ownership stays with the caller.
func Wrap1D[P series.Point[P]](c *series.Container[P]) (*Plottable1D[P], error) {
	if c == nil {
		return nil, ErrNoContainer
	}
	return &Plottable1D[P]{data: c}, nil
}

// Container returns the underlying data container.
func (p *Plottable1D[P]) Container() *series.Container[P] {
	return p.data
}

// DataCount returns the number of points.
func (p *Plottable1D[P]) DataCount() int {
	return p.data.Len()
}

// DataSortKey returns the sort key of the point at index.
func (p *Plottable1D[P]) DataSortKey(index int) float64 {
	pt, ok := p.data.At(index)
	if !ok {
		T().Errorf("plottable1d: sort key index %d out of bounds", index)
		return 0
	}
	return pt.SortKey()
}

// DataMainKey returns the plot key coordinate of the point at index.
func (p *Plottable1D[P]) DataMainKey(index int) float64 {
	pt, ok := p.data.At(index)
	if !ok {
		T().Errorf("plottable1d: main key index %d out of bounds", index)
		return 0
	}
	return pt.MainKey()
}

// DataMainValue returns the plot value coordinate of the point at index.
func (p *Plottable1D[P]) DataMainValue(index int) float64 {
	pt, ok := p.data.At(index)
	if !ok {
		T().Errorf("plottable1d: main value index %d out of bounds", index)
		return 0
	}
	return pt.MainValue()
}

// DataValueRange returns the value axis span of the point at index.
func (p *Plottable1D[P]) DataValueRange(index int) series.Range {
	pt, ok := p.data.At(index)
	if !ok {
		T().Errorf("plottable1d: value range index %d out of bounds", index)
		return series.Range{}
	}
	return pt.ValueRange()
}

// SortKeyIsMainKey reports whether the point type sorts by its main key.
func (p *Plottable1D[P]) SortKeyIsMainKey() bool {
	var probe P
	return probe.SortKeyIsMainKey()
}

// FindBegin returns the index of the first point with a sort key not less
// than sortKey; see the container method for the expanded semantics.
func (p *Plottable1D[P]) FindBegin(sortKey float64, expanded bool) int {
	return p.data.FindBegin(sortKey, expanded)
}

// FindEnd returns the index just past the last point with a sort key not
// greater than sortKey; see the container method for the expanded semantics.
func (p *Plottable1D[P]) FindEnd(sortKey float64, expanded bool) int {
	return p.data.FindEnd(sortKey, expanded)
}

// SelectInRect returns the contiguous runs of points whose main coordinates
// lie within keyRange and valueRange, as a simplified selection. This is the
// data side of rectangular hit testing; converting the device rectangle to
// coordinate ranges is the widget's business.
//
// Both ranges are normalized first, so bounds may be given in any order.
// When the point type sorts by its main key, the scan is narrowed to the key
// window by binary search.
func (p *Plottable1D[P]) SelectInRect(keyRange, valueRange series.Range) DataSelection {
	var result DataSelection
	if p.data.IsEmpty() {
		return result
	}
	keyRange = keyRange.Normalized()
	valueRange = valueRange.Normalized()
	begin, end := 0, p.data.Len()
	if p.SortKeyIsMainKey() {
		begin = p.data.FindBegin(keyRange.Lower, false)
		end = p.data.FindEnd(keyRange.Upper, false)
	}
	if begin == end {
		return result
	}
	segmentBegin := -1 // -1: currently not inside a contained segment
	for index := begin; index < end; index++ {
		pt, _ := p.data.At(index)
		inside := valueRange.Contains(pt.MainValue()) && keyRange.Contains(pt.MainKey())
		if segmentBegin == -1 {
			if inside {
				segmentBegin = index
			}
		} else if !inside {
			result.AddDataRange(series.DataRange{Begin: segmentBegin, End: index}, false)
			segmentBegin = -1
		}
	}
	if segmentBegin != -1 {
		result.AddDataRange(series.DataRange{Begin: segmentBegin, End: end}, false)
	}
	result.Simplify()
	return result
}

// DataSegments splits the full data range into the segments covered by sel
// and the gaps between them. Renderers use this to draw selected and
// unselected point runs with different styles.
func (p *Plottable1D[P]) DataSegments(sel DataSelection) (selected, unselected []series.DataRange) {
	simplified := DataSelection{ranges: append([]series.DataRange(nil), sel.ranges...)}
	simplified.Simplify()
	selected = simplified.DataRanges()
	unselected = simplified.Inverse(p.data.DataRange()).DataRanges()
	return selected, unselected
}
