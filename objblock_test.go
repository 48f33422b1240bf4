package gc

import (
	"testing"

	"github.com/tracewell/cpgc/internal/bitmap"
)

func TestObjBlockClaimFillsAndReports(t *testing.T) {
	b := newObjBlock()
	for i := 0; i < bitmap.Width; i++ {
		if g := b.claim(); g == nil {
			t.Fatalf("claim %d: unexpected nil", i)
		}
	}
	if g := b.claim(); g != nil {
		t.Fatal("claim on a full block returned non-nil")
	}
	if b.empty() {
		t.Fatal("full block reports empty")
	}
}

func TestObjBlockClaimThenReleaseClearsSlot(t *testing.T) {
	b := newObjBlock()
	g := b.claim()
	if g == nil {
		t.Fatal("claim returned nil on fresh block")
	}
	g.data = nil
	g.marked = true
	b.release(g)
	if !b.empty() {
		t.Fatal("block with all slots released reports non-empty")
	}
	if g.marked {
		t.Fatal("release did not clear marked")
	}
}

func TestObjRingGrowsWhenFull(t *testing.T) {
	r := newObjRing()
	total := bitmap.Width + 1
	gs := make([]*Gateway, 0, total)
	for i := 0; i < total; i++ {
		g := r.alloc()
		if g == nil {
			t.Fatalf("alloc %d returned nil", i)
		}
		gs = append(gs, g)
	}
	if r.blocks != 2 {
		t.Fatalf("blocks = %d, want 2", r.blocks)
	}
	seen := make(map[*Gateway]bool, total)
	for _, g := range gs {
		if seen[g] {
			t.Fatal("alloc returned the same Gateway twice")
		}
		seen[g] = true
	}
}

func TestObjRingAllocReusesBlockFreedSinceLastCollect(t *testing.T) {
	r := newObjRing()
	first := r.current
	var firstSlots []*Gateway
	for i := 0; i < bitmap.Width; i++ {
		firstSlots = append(firstSlots, r.alloc())
	}
	// Fill the second block too, so the only way to satisfy the next
	// alloc without growing is to walk back around to the first block.
	for i := 0; i < bitmap.Width; i++ {
		r.alloc()
	}
	if r.blocks != 2 {
		t.Fatalf("blocks = %d, want 2", r.blocks)
	}
	second := r.current

	for _, g := range firstSlots {
		first.release(g)
	}
	// Simulate the bookkeeping a sweep performs: lastCollect pins the
	// walk's stopping point to wherever current ended up.
	r.lastCollect = r.current

	g := r.alloc()
	if g == nil {
		t.Fatal("alloc returned nil despite free slots in the first block")
	}
	if r.blocks != 2 {
		t.Fatalf("blocks = %d after reusing a freed block, want 2 (no growth)", r.blocks)
	}
	if g.block != first {
		t.Fatal("alloc did not reuse the freed first block")
	}
	_ = second
}

func TestObjRingEachVisitsEveryBlockOnce(t *testing.T) {
	r := newObjRing()
	for i := 0; i < bitmap.Width+5; i++ {
		r.alloc()
	}
	count := 0
	r.each(func(*objBlock) { count++ })
	if count != r.blocks {
		t.Fatalf("each visited %d blocks, ring has %d", count, r.blocks)
	}
}
