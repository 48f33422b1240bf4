package gc

import "unsafe"

// Kind distinguishes the two shapes a Descriptor can describe.
type Kind uint8

const (
	// Fixed describes a homogeneous array of elements of a constant size,
	// each with a constant number of leading sub-reference slots. The
	// collector walks Fixed objects itself; the host never sees a callback
	// for them.
	Fixed Kind = iota
	// Custom describes an object whose shape only the host understands.
	// The collector defers tracing and finalizing to callbacks registered
	// under small integer IDs.
	Custom
)

// Descriptor tells the collector how to trace, size, and finalize an
// object reachable through a Gateway. It is a tagged union in the manner
// of the C reference it is drawn from: Kind selects whether the Fixed or
// Custom fields govern tracing, but FinalizerID applies to a reclaimed
// gateway of either kind.
//
// A zero Descriptor describes a zero-length Fixed array and is a valid,
// harmless default.
type Descriptor struct {
	Kind Kind

	// Fixed layout fields, meaningful when Kind is Fixed. ElemSize is the
	// stride of one element in bytes. Subrefs is the number of leading
	// uintptr-sized slots in each element that hold pointers to other
	// Gateways; the remaining ElemSize - Subrefs*sizeOfSubref bytes are
	// opaque payload the collector never inspects. Count is the number of
	// elements.
	//
	// When Kind is Custom, ElemSize instead gives the length in bytes of
	// the whole data buffer, but only if the host wants the engine to own
	// that buffer: it is what RawFree and Raw use to size it. Subrefs and
	// Count are unused for Custom.
	ElemSize uintptr
	Subrefs  uint16
	Count    uintptr

	// TracerID indexes the Engine's tracer callback table and applies
	// only when Kind is Custom; it is ignored for Fixed gateways, which
	// the collector traces itself.
	TracerID uint16

	// FinalizerID indexes the Engine's finalizer callback table and
	// applies to a reclaimed gateway of either Kind. Zero means "no
	// finalizer"; a registered finalizer ID is always >= 1.
	FinalizerID uint16
}

// sizeOfSubref is the width of one sub-reference slot: a pointer to a
// Gateway, stored inline in the object's own bytes.
const sizeOfSubref = unsafe.Sizeof((*Gateway)(nil))

// byteSize returns the number of bytes to pass to RawFree when reclaiming
// a Gateway with this descriptor: the full array size for Fixed, or the
// buffer length the host recorded in ElemSize for Custom.
func (d Descriptor) byteSize() uintptr {
	if d.Kind == Custom {
		return d.ElemSize
	}
	return d.ElemSize * d.Count
}

// subrefBytes returns the number of leading bytes of one element that hold
// sub-reference pointers.
func (d Descriptor) subrefBytes() uintptr {
	return uintptr(d.Subrefs) * sizeOfSubref
}

// Size reports the number of bytes a Gateway built from this Descriptor
// occupies: the full array for Fixed, or the buffer length recorded in
// ElemSize for Custom. It is the same value byteSize computes, exported
// for hosts that track their own memory accounting alongside the
// engine's.
func (d Descriptor) Size() uintptr {
	return d.byteSize()
}

// NewFixedDescriptor builds a Descriptor for a Fixed-layout array of count
// elements, each with subrefs leading sub-reference slots followed by
// rawBytes of opaque payload. finalizerID, if nonzero, is invoked once,
// with the whole array's data pointer, when a Gateway built from this
// Descriptor is reclaimed.
func NewFixedDescriptor(count uintptr, subrefs uint16, rawBytes uintptr, finalizerID uint16) Descriptor {
	return Descriptor{
		Kind:        Fixed,
		ElemSize:    uintptr(subrefs)*sizeOfSubref + rawBytes,
		Subrefs:     subrefs,
		Count:       count,
		FinalizerID: finalizerID,
	}
}

// NewCustomDescriptor builds a Descriptor for a Custom object traced by
// tracerID and, if nonzero, finalized by finalizerID. totalBytes records
// the length of the data buffer for Gateways the engine owns (built with
// Engine.RawAlloc and Engine.Give); pass 0 for buffers the engine neither
// owns nor needs to size, such as a Go-managed value reached only through
// the tracer and finalizer callbacks.
func NewCustomDescriptor(totalBytes uintptr, tracerID, finalizerID uint16) Descriptor {
	return Descriptor{
		Kind:        Custom,
		ElemSize:    totalBytes,
		TracerID:    tracerID,
		FinalizerID: finalizerID,
	}
}
