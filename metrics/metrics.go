// Package metrics is a lightweight in-process instrumentation counter,
// incremented by package split and package bsp as they work. There is no
// exporter here: callers read a Snapshot and forward it to whatever they
// like (a log line, a test assertion).
package metrics

import "sync/atomic"

var (
	splits    atomic.Int64
	fragments atomic.Int64
)

// RecordSplit counts one polygon-split operation (successful or not; call
// sites only increment on success).
func RecordSplit() {
	splits.Add(1)
}

// RecordFragment counts one fragment added to a splitter's result set.
func RecordFragment() {
	fragments.Add(1)
}

// Snapshot is a point-in-time read of the counters.
type Snapshot struct {
	Splits    int64
	Fragments int64
}

// Read returns the current counter values.
func Read() Snapshot {
	return Snapshot{Splits: splits.Load(), Fragments: fragments.Load()}
}

// Reset zeroes every counter. Intended for test isolation between cases
// that each want their own count.
func Reset() {
	splits.Store(0)
	fragments.Store(0)
}
