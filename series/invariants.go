package series

import (
	"errors"
	"fmt"
)

// ErrInvariant signals a violated container invariant found by Check.
var ErrInvariant = errors.New("series: container invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// Check validates the container's structural invariants: pool accounting and
// the non-decreasing sort key order of the live range.
//
// The mutation methods never leave the container invalid on their own; Check
// exists for tests and for RawPoints callers who want to verify they
// restored the sort order. It is O(n) and deliberately not called from any
// container operation.
func (c *Container[T]) Check() error {
	if c == nil {
		return fmt.Errorf("%w: nil container", ErrInvariant)
	}
	if c.preallocSize < 0 || c.preallocSize > len(c.data) {
		return fmt.Errorf("%w: prefix pool size %d outside [0, %d]",
			ErrInvariant, c.preallocSize, len(c.data))
	}
	if c.preallocIteration < 0 {
		return fmt.Errorf("%w: negative growth generation %d", ErrInvariant, c.preallocIteration)
	}
	live := c.live()
	for i := 1; i < len(live); i++ {
		if lessBySortKey(live[i], live[i-1]) {
			return fmt.Errorf("%w: sort key order broken between index %d (%g) and %d (%g)",
				ErrInvariant, i-1, live[i-1].SortKey(), i, live[i].SortKey())
		}
	}
	return nil
}
