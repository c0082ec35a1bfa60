/*
Package qcp provides the data layer for one-dimensional plottables: sorted
point-series containers and the index-based read interface that plotting
front-ends consume.

# Data containers

Interactive plotting has a peculiar access pattern: data arrives in bursts of
contiguous, mostly time-like samples that are prepended or appended to an
existing series, while the render loop keeps asking for "all points whose key
lies in [a,b]". Package series implements a container optimized for exactly
this: a single contiguous buffer with unused pre- and postallocation pools,
so that prepending and appending are amortized O(1), and binary-search range
queries over the always-sorted live range.

This package sits on top of series and provides

  - concrete point types for common plottables (GraphPoint, CurvePoint,
    FinancialPoint),
  - DataSelection, an ordered list of index ranges, and
  - Plottable1D, the read-only 1D interface adapter which exposes points by
    index and performs data-side hit testing.

Axes, coordinate transforms and painting are the plotting widget's business
and have no representation here.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package qcp

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DataError is an error type for the qcp data layer.
type DataError string

func (e DataError) Error() string {
	return string(e)
}

// ErrNoContainer signals an attempt to adapt a nil data container.
const ErrNoContainer = DataError("plottable has no data container")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = DataError("illegal arguments")
