package qcp

import (
	"slices"

	"github.com/emiro85/QCustomPlot/series"
)

// DataSelection is an ordered list of index ranges referencing points of a
// plottable. Consumers use it to mark subsets of a series (selected points,
// render segments) without copying any data.
//
// A selection is not kept simplified automatically; call Simplify after
// batched AddDataRange calls or pass simplify=true on the last one.
type DataSelection struct {
	ranges []series.DataRange
}

// SelectionFromRange creates a selection covering a single index range.
func SelectionFromRange(r series.DataRange) DataSelection {
	var s DataSelection
	s.AddDataRange(r, false)
	return s
}

// AddDataRange adds r to the selection, optionally simplifying afterwards.
func (s *DataSelection) AddDataRange(r series.DataRange, simplify bool) {
	if r.IsEmpty() {
		return
	}
	s.ranges = append(s.ranges, r)
	if simplify {
		s.Simplify()
	}
}

// Simplify sorts the ranges by begin index and joins adjacent or overlapping
// ranges; empty ranges are dropped.
func (s *DataSelection) Simplify() {
	s.ranges = slices.DeleteFunc(s.ranges, series.DataRange.IsEmpty)
	if len(s.ranges) < 2 {
		return
	}
	slices.SortFunc(s.ranges, func(a, b series.DataRange) int { return a.Begin - b.Begin })
	merged := s.ranges[:1]
	for _, r := range s.ranges[1:] {
		last := &merged[len(merged)-1]
		if r.Begin <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
		} else {
			merged = append(merged, r)
		}
	}
	s.ranges = merged
}

// IsEmpty reports whether the selection references no indexes.
func (s DataSelection) IsEmpty() bool {
	return len(s.ranges) == 0
}

// DataRangeCount returns the number of ranges in the selection.
func (s DataSelection) DataRangeCount() int {
	return len(s.ranges)
}

// DataRanges returns the selection's ranges. The slice is shared with the
// selection and must not be modified.
func (s DataSelection) DataRanges() []series.DataRange {
	return s.ranges
}

// TotalDataCount returns the summed size of all ranges. Only meaningful on a
// simplified selection, since overlapping ranges count twice.
func (s DataSelection) TotalDataCount() int {
	var total int
	for _, r := range s.ranges {
		total += r.Size()
	}
	return total
}

// Inverse returns the selection inverted over outer: every index of outer
// that s does not cover, as a simplified selection.
func (s DataSelection) Inverse(outer series.DataRange) DataSelection {
	var result DataSelection
	if s.IsEmpty() {
		result.AddDataRange(outer, false)
		return result
	}
	simplified := DataSelection{ranges: slices.Clone(s.ranges)}
	simplified.Simplify()
	cursor := outer.Begin
	for _, r := range simplified.ranges {
		cut := r.Intersection(outer)
		if cut.IsEmpty() {
			continue
		}
		if cut.Begin > cursor {
			result.AddDataRange(series.DataRange{Begin: cursor, End: cut.Begin}, false)
		}
		if cut.End > cursor {
			cursor = cut.End
		}
	}
	if cursor < outer.End {
		result.AddDataRange(series.DataRange{Begin: cursor, End: outer.End}, false)
	}
	return result
}
