/*
Package series implements a key-sorted container for one-dimensional point
data.

The container keeps its points in a single contiguous backing buffer, split
into three logical zones: an unused prefix pool, the live range, and unused
suffix capacity. The live range is always sorted by the points' sort key,
which makes range lookups a binary search, while the two pools make
prepending and appending amortized O(1). This matches how plotting data is
typically produced: monotonically growing at either end, with occasional
sparse edits in between.

The container is generic over any point type satisfying the Point capability
set and is not safe for concurrent mutation; it assumes exclusive ownership
during any call.
*/
package series

import "github.com/npillmayer/schuko/tracing"

// tracer traces to a global tracer with key 'qcp.series'.
func tracer() tracing.Trace {
	return tracing.Select("qcp.series")
}
