// Package testutils provides utilities for testing code built on gc.Engine.
package testutils

import (
	"sync"
	"testing"

	gc "github.com/tracewell/cpgc"
)

// sharedEngine is the Engine used by tests that don't need a fresh one of
// their own.
var sharedEngine *gc.Engine

var sharedEngineInit sync.Once

// SharedEngine returns an Engine shared by all tests that use this
// package. Tests that need to control memory limits or leak checks, or
// that mutate shared state in ways that would interfere with other
// tests, should construct their own gc.NewEngine instead.
func SharedEngine() *gc.Engine {
	sharedEngineInit.Do(ResetSharedEngine)
	return sharedEngine
}

// ResetSharedEngine reinitializes the Engine returned by SharedEngine. It
// is not safe to call this from parallel tests.
func ResetSharedEngine() {
	sharedEngine = gc.NewEngine()
}

// GraphTestCase is a test case that builds an object graph against an
// Engine, runs exactly one collection, and checks the resulting stats
// with a predicate.
type GraphTestCase struct {
	// Build allocates the graph under test and returns the Roots that
	// should anchor it before the collection runs. Build receives the
	// fresh Engine that TestFunc collects and reads stats from; objects
	// allocated on any other Engine are not part of the check.
	Build func(e *gc.Engine) []*gc.Root
	// Pass is a predicate over the stats snapshot taken right after the
	// collection. If Pass returns false, the test fails.
	Pass func(gc.Stats) bool
}

// TestFunc returns a test function for the case, using a fresh Engine so
// that one case's object graph cannot affect another's stats.
func (c GraphTestCase) TestFunc() func(*testing.T) {
	return func(t *testing.T) {
		e := gc.NewEngine()
		roots := c.Build(e)
		e.Collect()
		stats := e.Stats()
		if !c.Pass(stats) {
			t.Errorf("graph produced wrong stats: %s", stats)
		}
		for _, r := range roots {
			e.FreeRoot(r)
		}
	}
}

// PassFreed returns a Pass function that requires exactly n objects to
// have been freed across the Engine's lifetime at the point it is called.
func PassFreed(n int64) func(gc.Stats) bool {
	return func(s gc.Stats) bool {
		return s.Freed == n
	}
}

// PassNoneFreed returns a Pass function requiring that nothing was freed,
// for cases that expect every object in the graph to still be reachable.
func PassNoneFreed() func(gc.Stats) bool {
	return PassFreed(0)
}

// PassAtLeastCollected returns a Pass function requiring the Engine to
// have run at least n collections.
func PassAtLeastCollected(n int64) func(gc.Stats) bool {
	return func(s gc.Stats) bool {
		return s.Collections >= n
	}
}

// CheckReachable is a testing helper that fails the test unless want is
// among the first depth Gateways on the chain that starts at from and
// follows each Gateway's SubRef(0, 0); from itself counts as the first,
// so depth 1 only compares from with want. It exists for tests that build linked structures
// and want to assert shape, not just survival.
func CheckReachable(t *testing.T, from *gc.Gateway, want *gc.Gateway, depth int) {
	t.Helper()
	g := from
	for i := 0; i < depth; i++ {
		if g == want {
			return
		}
		if g == nil {
			t.Fatalf("chain ended before reaching the target at depth %d", i)
		}
		g = g.SubRef(0, 0)
	}
	t.Fatalf("target not reached within %d steps", depth)
}
