package gc

// Destroy tears down the engine: it walks the object ring and, for every
// still-used slot, runs its finalizer (if any) and frees its storage,
// exactly as a sweep would treat an unreachable object. Unlike Collect,
// Destroy does not trace from the root set first, so every live object is
// finalized regardless of whether anything still reaches it.
//
// A host must call Destroy before discarding an Engine that still holds
// any objects, of either Kind, with registered finalizers. Go will
// eventually collect the Gateway and Engine structs on their own, but
// nothing will ever invoke the finalizer callbacks the host registered
// for the external resources those objects hold.
//
// After Destroy returns, the Engine must not be used again.
func (e *Engine) Destroy() {
	var lc *leakCheck
	if e.guard {
		lc = newLeakCheck()
	}
	e.objects.each(func(b *objBlock) {
		for i := range b.slots {
			if !b.free.Used(i) {
				continue
			}
			e.finalizeAndRelease(b, &b.slots[i], lc)
		}
	})
}
