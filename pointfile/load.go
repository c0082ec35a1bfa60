package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"

	qcp "github.com/emiro85/QCustomPlot"
	"github.com/emiro85/QCustomPlot/series"
)

// Some constants for fragment size defaults
const (
	defaultFragSize = 2048
	maxFragSize     = 65536
)

// Load reads a sample file and returns its points collected into a sorted
// container.
//
// The format is line based: one key and one value per line, separated by
// whitespace. Blank lines and lines starting with '#' are skipped. A file
// with ascending keys is ingested through the container's sorted-append
// fast path; out-of-order files are merged like any other batch.
func Load(name string) (*series.Container[qcp.GraphPoint], error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cont := series.New[qcp.GraphPoint]()
	if err := readInto(f, cont, defaultFragSize, nil); err != nil {
		return nil, err
	}
	return cont, nil
}

// Progress reports ingestion progress to subscribers of a Loader.
type Progress struct {
	Points int   // points ingested so far
	Done   bool  // set on the final event
	Err    error // set when ingestion failed
}

// Loader ingests a sample file in the background, broadcasting Progress
// events to subscribers. The container stays under the loader's exclusive
// ownership while loading runs; it is handed over through Wait.
type Loader struct {
	name string
	frag int
	cast *caster.Caster // broadcaster for async file loading
	cont *series.Container[qcp.GraphPoint]
	err  error
	done chan struct{}
}

// NewLoader prepares a background loader for the named sample file.
// fragSize is the number of points per ingested batch; 0 picks a default.
func NewLoader(name string, fragSize int) *Loader {
	if fragSize <= 0 || fragSize > maxFragSize {
		fragSize = defaultFragSize
	}
	return &Loader{
		name: name,
		frag: fragSize,
		cast: caster.New(nil), // we will broadcast a message per ingested fragment
		cont: series.New[qcp.GraphPoint](),
		done: make(chan struct{}),
	}
}

// Subscribe returns a channel of Progress events and an unsubscribe
// function. Slow subscribers may miss intermediate events; the final Done
// event closes the broadcast. Subscribe before calling Start to see every
// fragment.
func (l *Loader) Subscribe() (<-chan interface{}, func()) {
	ch, _ := l.cast.Sub(nil, 8)
	return ch, func() { l.cast.Unsub(ch) }
}

// Start begins loading in a background goroutine. The returned channel is
// closed once ingestion has finished, successfully or not.
func (l *Loader) Start() <-chan struct{} {
	go func() {
		defer close(l.done)
		defer l.cast.Close()
		f, err := openFile(l.name)
		if err != nil {
			l.err = err
			l.cast.TryPub(Progress{Done: true, Err: err})
			return
		}
		defer f.Close()
		err = readInto(f, l.cont, l.frag, func(p Progress) { l.cast.TryPub(p) })
		l.err = err
		tracer().Debugf("pointfile: finished loading %s, %d points", l.name, l.cont.Len())
		l.cast.TryPub(Progress{Points: l.cont.Len(), Done: true, Err: err})
	}()
	return l.done
}

// Wait blocks until loading has finished and hands over the container.
func (l *Loader) Wait() (*series.Container[qcp.GraphPoint], error) {
	<-l.done
	return l.cont, l.err
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("pointfile: %s is not a regular file", name)
	}
	return os.Open(name)
}

// readInto parses samples fragment-wise into cont, reporting each ingested
// fragment through publish (which may be nil). Each fragment is handed to
// the container as one batch, flagged as pre-sorted when its keys were
// non-decreasing, so monotonic files ride the append/prepend fast paths.
func readInto(r io.Reader, cont *series.Container[qcp.GraphPoint], fragSize int,
	publish func(Progress)) error {
	scanner := bufio.NewScanner(r)
	batch := make([]qcp.GraphPoint, 0, fragSize)
	sorted := true
	total := 0
	lineno := 0
	var lastKey float64
	flush := func() {
		if len(batch) == 0 {
			return
		}
		cont.Add(batch, sorted) // Add never retains the slice, so we can reuse it
		total += len(batch)
		batch = batch[:0]
		sorted = true
		if publish != nil {
			publish(Progress{Points: total})
		}
	}
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("pointfile: line %d: want key and value, got %q", lineno, line)
		}
		key, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("pointfile: line %d: bad key: %w", lineno, err)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("pointfile: line %d: bad value: %w", lineno, err)
		}
		if len(batch) > 0 && key < lastKey {
			sorted = false
		}
		lastKey = key
		batch = append(batch, qcp.GraphPoint{Key: key, Value: value})
		if len(batch) >= fragSize {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("pointfile: reading samples: %w", err)
	}
	flush()
	return nil
}
