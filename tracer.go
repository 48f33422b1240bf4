package gc

import "unsafe"

// trace marks g and everything reachable from it. It is safe to call on a
// nil Gateway or one already marked in this collection; both return
// immediately, which is what makes it safe to call on cyclic graphs.
func (e *Engine) trace(g *Gateway) {
	if g == nil || g.marked {
		return
	}
	g.marked = true

	switch g.desc.Kind {
	case Fixed:
		e.traceFixed(g)
	case Custom:
		e.traceCustom(g)
	}
}

// traceFixed walks every sub-reference slot of every element in a Fixed
// array and traces the Gateway pointer stored there, if any.
func (e *Engine) traceFixed(g *Gateway) {
	d := g.desc
	if d.Subrefs == 0 || d.Count == 0 || g.data == nil {
		return
	}
	base := uintptr(g.data)
	for i := uintptr(0); i < d.Count; i++ {
		elem := base + i*d.ElemSize
		for s := uint16(0); s < d.Subrefs; s++ {
			slot := (**Gateway)(unsafe.Pointer(elem + uintptr(s)*sizeOfSubref))
			e.trace(*slot)
		}
	}
}

// traceCustom hands the object to its registered tracer, if one was
// recorded for it, passing e.trace bound as the MarkFunc so recursion
// continues through the same cycle-safe path.
func (e *Engine) traceCustom(g *Gateway) {
	fn := e.callbacks.tracer(g.desc.TracerID)
	if fn == nil {
		return
	}
	if e.guard {
		e.entered = true
		defer func() { e.entered = false }()
	}
	fn(g.data, e.trace)
}

// markRoots traces every live Root across the root ring, establishing the
// initial reachable set for a collection.
func (e *Engine) markRoots() {
	e.roots.each(func(b *rootBlock) {
		for i := range b.slots {
			if !b.free.Used(i) {
				continue
			}
			e.trace(b.slots[i].target)
		}
	})
}
