package arena

import (
	"testing"
	"unsafe"
)

func TestAllocFreeRoundTrip(t *testing.T) {
	const n = 256
	p := Alloc(n)
	if p == nil {
		t.Fatal("Alloc returned nil")
	}
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		if b[i] != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, b[i])
		}
		b[i] = byte(i)
	}
	for i := range b {
		if b[i] != byte(i) {
			t.Fatalf("byte %d corrupted: got %d, want %d", i, b[i], byte(i))
		}
	}
	Free(p, n)
}

func TestFreeNilIsNoop(t *testing.T) {
	Free(nil, 0)
	Free(nil, 128)
}

func TestRoundUp(t *testing.T) {
	if RoundUp(0) > pageSize {
		t.Fatalf("RoundUp(0) = %d, want at most one page", RoundUp(0))
	}
	if got := RoundUp(pageSize); got != pageSize {
		t.Fatalf("RoundUp(pageSize) = %d, want %d", got, pageSize)
	}
	if got := RoundUp(pageSize + 1); got != 2*pageSize {
		t.Fatalf("RoundUp(pageSize+1) = %d, want %d", got, 2*pageSize)
	}
}
