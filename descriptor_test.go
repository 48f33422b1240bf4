package gc

import "testing"

func TestDescriptorByteSize(t *testing.T) {
	d := Descriptor{Kind: Fixed, ElemSize: 16, Count: 4}
	if got, want := d.byteSize(), uintptr(64); got != want {
		t.Fatalf("byteSize() = %d, want %d", got, want)
	}
}

func TestDescriptorSubrefBytes(t *testing.T) {
	d := Descriptor{Kind: Fixed, ElemSize: 24, Subrefs: 2}
	if got, want := d.subrefBytes(), 2*sizeOfSubref; got != want {
		t.Fatalf("subrefBytes() = %d, want %d", got, want)
	}
}

func TestZeroDescriptorIsHarmless(t *testing.T) {
	var d Descriptor
	if d.byteSize() != 0 {
		t.Fatalf("zero Descriptor byteSize() = %d, want 0", d.byteSize())
	}
}

func TestNewFixedDescriptorComputesElemSize(t *testing.T) {
	d := NewFixedDescriptor(4, 2, 8, 7)
	want := 2*sizeOfSubref + 8
	if d.Kind != Fixed {
		t.Fatalf("Kind = %v, want Fixed", d.Kind)
	}
	if d.ElemSize != want {
		t.Fatalf("ElemSize = %d, want %d", d.ElemSize, want)
	}
	if d.Subrefs != 2 || d.Count != 4 || d.FinalizerID != 7 {
		t.Fatalf("NewFixedDescriptor = %+v, unexpected fields", d)
	}
	if got, want := d.Size(), d.ElemSize*d.Count; got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
}

func TestNewCustomDescriptorSetsFields(t *testing.T) {
	d := NewCustomDescriptor(32, 3, 5)
	if d.Kind != Custom {
		t.Fatalf("Kind = %v, want Custom", d.Kind)
	}
	if d.ElemSize != 32 || d.TracerID != 3 || d.FinalizerID != 5 {
		t.Fatalf("NewCustomDescriptor = %+v, unexpected fields", d)
	}
	if got, want := d.Size(), uintptr(32); got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
}
