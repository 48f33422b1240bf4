package gc

import "unsafe"

// Gateway is a stable handle to an object living on the collector's heap.
// Its address never changes for as long as the object it describes is
// alive, so the host may freely hand out *Gateway values and store them
// inside other objects as sub-references.
//
// Gateway is itself part of the slot array inside an objBlock; it is never
// allocated individually.
type Gateway struct {
	data   unsafe.Pointer
	desc   Descriptor
	marked bool
	owned  bool // true if data came from RawAlloc and sweep must Free it
	block  *objBlock
	slot   int
}

// Descriptor returns the layout descriptor the Gateway was created with.
func (g *Gateway) Descriptor() Descriptor {
	return g.desc
}

// Data returns the raw pointer to the object's bytes. Callers outside this
// package should prefer the accessor helpers in accessors.go rather than
// dereferencing this pointer directly.
func (g *Gateway) Data() unsafe.Pointer {
	return g.data
}
