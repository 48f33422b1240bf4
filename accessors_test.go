package gc

import "testing"

func TestSubRefRoundTrip(t *testing.T) {
	e := NewEngine()
	a, _ := e.Alloc(arrayDesc(2))
	b, _ := e.Alloc(arrayDesc(1))
	a.SetSubRef(1, 0, b)
	if got := a.SubRef(1, 0); got != b {
		t.Fatalf("SubRef(1, 0) = %p, want %p", got, b)
	}
	if got := a.SubRef(0, 0); got != nil {
		t.Fatalf("SubRef(0, 0) = %p, want nil", got)
	}
}

func TestSubRefOutOfRangePanics(t *testing.T) {
	e := NewEngine()
	a, _ := e.Alloc(arrayDesc(1))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range sub-reference slot")
		}
	}()
	a.SubRef(0, 1)
}

func TestElemAddrBoundsCheck(t *testing.T) {
	e := NewEngine()
	a, _ := e.Alloc(arrayDesc(2))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range index")
		}
	}()
	a.SubRef(2, 0)
}

func TestRawOnCustomObjectReturnsWholeBuffer(t *testing.T) {
	e := NewEngine()
	data := e.RawAlloc(8)
	g := e.Give(data, Descriptor{Kind: Custom, ElemSize: 8})
	b := g.Raw(0)
	if len(b) != 8 {
		t.Fatalf("Raw(0) len = %d, want 8", len(b))
	}
	b[0] = 0x42
	if got := g.Raw(0)[0]; got != 0x42 {
		t.Fatalf("Raw(0)[0] = %#x, want 0x42", got)
	}
}

func TestRawOnCustomObjectWithoutElemSizeIsNil(t *testing.T) {
	e := NewEngine()
	g := e.Give(nil, Descriptor{Kind: Custom})
	if b := g.Raw(0); b != nil {
		t.Fatalf("Raw(0) = %v, want nil", b)
	}
}
