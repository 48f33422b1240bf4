package gc

import "unsafe"

// Len returns the element count of a Fixed-layout array Gateway. It is
// meaningless for Custom Gateways, which have no notion of element count
// known to the collector.
func (g *Gateway) Len() uintptr {
	return g.desc.Count
}

// elemAddr bounds-checks index against the descriptor and returns the
// address of that element's first byte.
func (g *Gateway) elemAddr(index uintptr) uintptr {
	if g.desc.Kind != Fixed {
		panic("gc: element access on a Custom Gateway")
	}
	if index >= g.desc.Count {
		panic("gc: array index out of range")
	}
	return uintptr(g.data) + index*g.desc.ElemSize
}

// SubRef returns the sub-reference Gateway stored at element index, slot
// sub, of a Fixed-layout array.
func (g *Gateway) SubRef(index uintptr, sub uint16) *Gateway {
	if sub >= g.desc.Subrefs {
		panic("gc: sub-reference slot out of range")
	}
	addr := g.elemAddr(index) + uintptr(sub)*sizeOfSubref
	return *(**Gateway)(unsafe.Pointer(addr))
}

// SetSubRef stores sub as the sub-reference Gateway at element index, slot
// sub, of a Fixed-layout array. The host must not store a reference to a
// Gateway belonging to a different Engine; the collector has no way to
// detect that misuse.
func (g *Gateway) SetSubRef(index uintptr, sub uint16, ref *Gateway) {
	if sub >= g.desc.Subrefs {
		panic("gc: sub-reference slot out of range")
	}
	addr := g.elemAddr(index) + uintptr(sub)*sizeOfSubref
	*(**Gateway)(unsafe.Pointer(addr)) = ref
}

// Raw returns the opaque payload bytes of a Gateway's data region, as a
// slice aliasing the object's own storage. The slice is invalidated by
// the next collection that frees the Gateway; callers must not retain it
// past that point.
//
// For a Fixed-layout Gateway, index selects an element and Raw returns
// the portion of that element past its sub-reference slots. For a Custom
// Gateway, the whole data region is opaque to the collector and index is
// ignored: Raw returns the entire buffer, whose length is the
// Descriptor's ElemSize (set by the host when it wants the engine to own
// and expose that buffer rather than treat the data pointer as a black
// box reachable only through the tracer/finalizer callbacks).
func (g *Gateway) Raw(index uintptr) []byte {
	if g.desc.Kind == Custom {
		if g.desc.ElemSize == 0 || g.data == nil {
			return nil
		}
		return unsafe.Slice((*byte)(g.data), g.desc.ElemSize)
	}
	d := g.desc
	n := d.ElemSize - d.subrefBytes()
	if n == 0 {
		return nil
	}
	addr := g.elemAddr(index) + d.subrefBytes()
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}
