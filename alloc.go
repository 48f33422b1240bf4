package gc

import (
	"unsafe"

	"github.com/tracewell/cpgc/internal/arena"
)

// Alloc creates a new Fixed-layout array object described by desc and
// returns a Gateway to it. The backing bytes come from the engine's own
// arena and are zeroed.
//
// If the arena cannot satisfy the request, Alloc runs one collection and
// retries exactly once before giving up with ErrOOM. This mirrors the
// reference collector's allocate-or-collect-then-allocate driver: a
// collection is tried only after an allocation has actually failed, never
// preemptively.
func (e *Engine) Alloc(desc Descriptor) (*Gateway, error) {
	e.checkReentrant()
	g, err := e.tryAlloc(desc)
	if err == nil {
		return g, nil
	}
	e.Collect()
	return e.tryAlloc(desc)
}

func (e *Engine) tryAlloc(desc Descriptor) (*Gateway, error) {
	n := desc.byteSize()
	data := e.rawAlloc(n)
	if data == nil && n > 0 {
		return nil, ErrOOM
	}
	g := e.objects.alloc()
	g.data = data
	g.desc = desc
	g.owned = true
	return g, nil
}

// Give wraps host-owned raw data in a Gateway under a Custom descriptor,
// handing its lifetime over to the collector. data must have come from
// this Engine's RawAlloc, since the collector calls RawFree on it once the
// object becomes unreachable, and that is only valid for memory the
// arena itself produced.
func (e *Engine) Give(data unsafe.Pointer, desc Descriptor) *Gateway {
	e.checkReentrant()
	g := e.objects.alloc()
	g.data = data
	g.desc = desc
	g.owned = true
	return g
}

// RawAlloc allocates n bytes directly from the engine's arena, honoring
// the memory budget set by WithMemoryLimit if one was configured. It is
// the only source of raw data that Give may be called with.
func (e *Engine) RawAlloc(n uintptr) unsafe.Pointer {
	return e.rawAlloc(n)
}

// RawFree returns n bytes previously obtained from RawAlloc. The engine
// itself calls this during sweep for every owned Gateway it reclaims; the
// host only needs it to release raw memory it decided not to Give after
// all.
func (e *Engine) RawFree(p unsafe.Pointer, n uintptr) {
	e.rawFree(p, n)
}

func (e *Engine) rawAlloc(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	if e.budget != nil {
		if *e.budget < int64(n) {
			return nil
		}
		*e.budget -= int64(n)
	}
	return arena.Alloc(n)
}

func (e *Engine) rawFree(p unsafe.Pointer, n uintptr) {
	if p == nil {
		return
	}
	arena.Free(p, n)
	if e.budget != nil {
		*e.budget += int64(n)
	}
}
