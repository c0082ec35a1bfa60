package series

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a schematic of the container's allocation zones to w (for
// debugging purposes). The backing buffer is drawn as one bar: prefix pool,
// live range, suffix capacity, each scaled to its share of the total
// capacity. When w is an interactive terminal, the bar width adapts to the
// terminal width.
func (c *Container[T]) Dump(w io.Writer) {
	totalAlloc := cap(c.data)
	suffixSize := totalAlloc - len(c.data)
	fmt.Fprintf(w, "capacity %d | prefix %d  live %d  suffix %d | generation %d\n",
		totalAlloc, c.preallocSize, c.Len(), suffixSize, c.preallocIteration)
	if totalAlloc == 0 {
		return
	}
	width := 64
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 16 {
			width = cols - 16
		}
	}
	cells := func(n int) int {
		k := n * width / totalAlloc
		if n > 0 && k == 0 {
			k = 1 // never let a non-empty zone vanish from the bar
		}
		return k
	}
	pool := color.New(color.FgYellow)
	livePoints := color.New(color.FgGreen)
	spare := color.New(color.FgCyan)
	pool.Fprint(w, strings.Repeat("·", cells(c.preallocSize)))
	livePoints.Fprint(w, strings.Repeat("#", cells(c.Len())))
	spare.Fprint(w, strings.Repeat("·", cells(suffixSize)))
	fmt.Fprintln(w)
	if live := c.live(); len(live) > 0 {
		fmt.Fprintf(w, "sort keys %g … %g\n", live[0].SortKey(), live[len(live)-1].SortKey())
	}
}
