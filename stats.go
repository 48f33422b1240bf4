package gc

import (
	"time"

	"gitlab.com/variadico/lctime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// stats accumulates lifetime counters for an Engine. It is deliberately
// unexported; hosts read it through Engine.Stats, which takes a snapshot.
type stats struct {
	collections int64
	freed       int64
	lastRun     time.Time
	lastElapsed time.Duration
}

// Stats is a point-in-time snapshot of an Engine's lifetime counters,
// safe to hold onto after the Engine that produced it keeps running.
type Stats struct {
	Collections int64
	Freed       int64
	LastRun     time.Time
	LastElapsed time.Duration
}

// Stats returns a snapshot of the engine's collection counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Collections: e.stats.collections,
		Freed:       e.stats.freed,
		LastRun:     e.stats.lastRun,
		LastElapsed: e.stats.lastElapsed,
	}
}

// String renders a Stats snapshot the way a host might log it at shutdown:
// a locale-formatted timestamp for the last collection and thousands
// grouping on the counters, so large heaps don't produce a wall of digits.
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	when := "never"
	if !s.LastRun.IsZero() {
		when = lctime.Strftime("%c", s.LastRun)
	}
	return p.Sprintf("gc: %v collections, %v objects freed, last run %s (took %s)",
		number.Decimal(s.Collections), number.Decimal(s.Freed), when, s.LastElapsed)
}
