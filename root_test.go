package gc

import (
	"testing"

	"github.com/tracewell/cpgc/internal/bitmap"
)

func TestRootRingGrowsWhenFull(t *testing.T) {
	e := NewEngine()
	g, _ := e.Alloc(arrayDesc(1))
	total := bitmap.Width + 1
	roots := make([]*Root, 0, total)
	for i := 0; i < total; i++ {
		roots = append(roots, e.NewRoot(g))
	}
	if e.roots.blocks != 2 {
		t.Fatalf("root ring blocks = %d, want 2", e.roots.blocks)
	}
	for _, r := range roots {
		e.FreeRoot(r)
	}
	e.Collect()
	if e.roots.blocks < 1 {
		t.Fatalf("root ring blocks = %d, want >= 1 after compaction", e.roots.blocks)
	}
}

func TestFreeRootClearsTarget(t *testing.T) {
	e := NewEngine()
	g, _ := e.Alloc(arrayDesc(1))
	r := e.NewRoot(g)
	e.FreeRoot(r)
	if r.Get() != nil {
		t.Fatal("Get() after FreeRoot should return nil")
	}
}
