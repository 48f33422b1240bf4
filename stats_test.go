package gc

import "testing"

func TestStatsReflectsCollections(t *testing.T) {
	e := NewEngine()
	e.Alloc(arrayDesc(1))
	e.Collect()
	s := e.Stats()
	if s.Collections != 1 {
		t.Fatalf("Collections = %d, want 1", s.Collections)
	}
	if s.Freed != 1 {
		t.Fatalf("Freed = %d, want 1", s.Freed)
	}
	if s.LastRun.IsZero() {
		t.Fatal("LastRun was not recorded")
	}
}

func TestStatsStringNeverCollected(t *testing.T) {
	e := NewEngine()
	if got := e.Stats().String(); got == "" {
		t.Fatal("String() returned empty string")
	}
}
