package gc

import "time"

// Collect runs one major collection: it marks everything reachable from
// the root set, then sweeps the object heap, finalizing and reclaiming
// whatever it did not reach. It never fails and never retries by itself;
// Alloc is the only caller that decides to retry an allocation afterward.
func (e *Engine) Collect() {
	if e.guard && e.entered {
		panic(ErrReentrant)
	}
	start := time.Now()
	e.stats.collections++
	e.markRoots()
	e.sweep()
	e.stats.lastRun = start
	e.stats.lastElapsed = time.Since(start)
}
