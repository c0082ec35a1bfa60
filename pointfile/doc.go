/*
Package pointfile provides API helpers to load plain-text sample files into
point-series containers.

Files are ingested fragment-wise, so large files do not force a point-by-point
insert path. A synchronous Load API is provided, plus a Loader type which
ingests in the background and broadcasts progress to subscribers.

_________________________________________________________________________

# BSD 3-Clause License

All rights reserved.

Please refer to the License file in the repository root.
*/
package pointfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'qcp.pointfile'
func tracer() tracing.Trace {
	return tracing.Select("qcp.pointfile")
}
