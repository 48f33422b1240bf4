package bitmap

import "testing"

func TestClaimFillsExactlyWidth(t *testing.T) {
	w := Empty
	for i := 0; i < Width; i++ {
		ix := w.Claim()
		if ix != i {
			t.Fatalf("claim %d: got index %d", i, ix)
		}
	}
	if w != Full {
		t.Fatalf("word not full after claiming every slot: %#x", uint64(w))
	}
	if ix := w.Claim(); ix != -1 {
		t.Fatalf("claim on full word: got %d, want -1", ix)
	}
}

func TestReleaseThenClaimReturnsSameIndex(t *testing.T) {
	w := Empty
	for i := 0; i < Width; i++ {
		w.Claim()
	}
	w.Release(17)
	if ix := w.Claim(); ix != 17 {
		t.Fatalf("claim after release: got %d, want 17", ix)
	}
	if w != Full {
		t.Fatalf("word not full after re-claiming released slot: %#x", uint64(w))
	}
}

func TestUsed(t *testing.T) {
	w := Empty
	if w.Used(3) {
		t.Fatal("empty word reports slot 3 as used")
	}
	w.Claim()
	w.Claim()
	w.Claim()
	if !w.Used(2) {
		t.Fatal("claimed slot 2 reports as free")
	}
	if w.Used(3) {
		t.Fatal("unclaimed slot 3 reports as used")
	}
}

func TestClaimLowestFirst(t *testing.T) {
	w := Word(0b1011_0100)
	ix := w.Claim()
	if ix != 2 {
		t.Fatalf("claim: got %d, want 2 (lowest set bit)", ix)
	}
}
