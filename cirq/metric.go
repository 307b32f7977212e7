package cirq

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Each queue is single-goroutine, but a process typically runs many queues
// across many goroutines, so the package-wide counters use striped xsync
// counters instead of a single contended atomic.
var (
	growCount       = xsync.NewCounter()
	relocationCount = xsync.NewCounter()
)

// Metrics is a snapshot of the package-wide growth counters.
// The values can back a prometheus CounterFunc.
type Metrics struct {
	// Grows is the number of buffer growth events across all queues.
	Grows int64
	// Relocations is the number of element slots relocated by growth events
	// across all queues.
	Relocations int64
}

// GrowthMetrics returns a snapshot of the growth counters accumulated by all
// queues in the process since start or since the last reset.
func GrowthMetrics() Metrics {
	return Metrics{
		Grows:       growCount.Value(),
		Relocations: relocationCount.Value(),
	}
}

// ResetGrowthMetrics zeroes the package-wide growth counters.
func ResetGrowthMetrics() {
	growCount.Reset()
	relocationCount.Reset()
}
