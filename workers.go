package docket

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one page renders at a time.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing; rendering holds whole pages in
	// memory.
	MaxWorkers = 16
)

// ResolveWorkers determines how many pages render concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is container-aware once automaxprocs has run.
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
