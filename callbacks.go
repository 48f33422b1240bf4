package gc

import (
	"reflect"
	"unsafe"
)

// MarkFunc marks sub as reachable and, if this is the first time sub has
// been seen this collection, recurses into it. A TracerFunc receives one
// of these rather than a reference to the Engine's internals, so host
// tracer callbacks cannot observe or mutate collector state beyond what
// marking permits.
type MarkFunc func(sub *Gateway)

// TracerFunc traces a Custom object's sub-references by calling mark on
// each Gateway it holds. It must not allocate, free, or otherwise call
// back into the Engine; doing so from inside a collection is undefined by
// the host contract. With leak checks enabled, a call to Alloc, Give or
// Collect from inside the tracer panics with ErrReentrant.
type TracerFunc func(data unsafe.Pointer, mark MarkFunc)

// FinalizerFunc runs once, just before an unreachable object's storage is
// released, whether its Descriptor is Fixed or Custom, to let the host clean up external resources it
// referenced (file handles, native buffers, and the like).
type FinalizerFunc func(data unsafe.Pointer)

// callbackTable holds tracer or finalizer callbacks addressed by small
// integer IDs rather than by function value, so that Descriptors — which
// are copied freely and must stay small — carry a uint16 instead of a
// closure.
type callbackTable struct {
	tracers    []TracerFunc
	finalizers []FinalizerFunc
}

func (t *callbackTable) addTracer(fn TracerFunc) uint16 {
	t.tracers = append(t.tracers, fn)
	return uint16(len(t.tracers) - 1)
}

// addFinalizer returns an ID that is always >= 1, reserving 0 to mean "no
// finalizer" in a Descriptor's FinalizerID field.
func (t *callbackTable) addFinalizer(fn FinalizerFunc) uint16 {
	t.finalizers = append(t.finalizers, fn)
	return uint16(len(t.finalizers))
}

func (t *callbackTable) tracer(id uint16) TracerFunc {
	if int(id) >= len(t.tracers) {
		return nil
	}
	return t.tracers[id]
}

func (t *callbackTable) finalizer(id uint16) FinalizerFunc {
	if id == 0 || int(id) > len(t.finalizers) {
		return nil
	}
	return t.finalizers[id-1]
}

// findTracer performs the reverse lookup: given a callback, find the ID it
// was registered under. Func values aren't comparable with ==, so identity
// is decided by comparing code pointers, the usual way to recognize a Go
// function value by identity.
func (t *callbackTable) findTracer(fn TracerFunc) (uint16, bool) {
	target := reflect.ValueOf(fn).Pointer()
	for i, f := range t.tracers {
		if reflect.ValueOf(f).Pointer() == target {
			return uint16(i), true
		}
	}
	return 0, false
}

func (t *callbackTable) findFinalizer(fn FinalizerFunc) (uint16, bool) {
	target := reflect.ValueOf(fn).Pointer()
	for i, f := range t.finalizers {
		if reflect.ValueOf(f).Pointer() == target {
			return uint16(i + 1), true
		}
	}
	return 0, false
}
