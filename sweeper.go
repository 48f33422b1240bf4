package gc


// sweep reclaims every unmarked Gateway in the object ring, running
// finalizers first, then compacts away any block left entirely empty.
// Marked Gateways have their mark bit cleared so the next collection
// starts from a clean slate.
//
// At least one block always survives a sweep, even if every object in the
// engine died: sweepRing only ever removes a block once it has advanced
// past the block it started the lap on, exactly mirroring the bound the
// reference collector places on its own cleanup loop.
func (e *Engine) sweep() {
	var lc *leakCheck
	if e.guard {
		lc = newLeakCheck()
	}
	e.sweepRing(lc)
	e.compactRoots()
}

func (e *Engine) sweepRing(lc *leakCheck) {
	r := e.objects
	start := r.current
	var last *objBlock
	b := start
	for {
		next := b.next
		e.sweepBlock(b, lc)
		if b.empty() && last != nil {
			last.next = next
			r.blocks--
			if r.current == b {
				r.current = next
			}
		} else {
			last = b
		}
		if next == start {
			break
		}
		b = next
	}
	r.lastCollect = r.current
}

// sweepBlock finalizes and frees every unmarked used slot in b, and clears
// the mark bit on every slot that survived.
func (e *Engine) sweepBlock(b *objBlock, lc *leakCheck) {
	for i := range b.slots {
		if !b.free.Used(i) {
			continue
		}
		g := &b.slots[i]
		if g.marked {
			g.marked = false
			continue
		}
		e.finalizeAndRelease(b, g, lc)
	}
}

func (e *Engine) finalizeAndRelease(b *objBlock, g *Gateway, lc *leakCheck) {
	if fn := e.callbacks.finalizer(g.desc.FinalizerID); fn != nil {
		lc.markFinalized(g.data)
		if e.guard {
			e.entered = true
		}
		fn(g.data)
		e.entered = false
	}
	if g.owned && g.data != nil {
		e.rawFree(g.data, g.desc.byteSize())
	}
	e.stats.freed++
	b.release(g)
}

// compactRoots removes empty rootBlocks from the root ring under the same
// at-least-one-block guarantee as the object ring. Root blocks are never
// swept for liveness on their own; a Root is released explicitly by the
// host via Engine.FreeRoot.
func (e *Engine) compactRoots() {
	r := e.roots
	start := r.current
	var last *rootBlock
	b := start
	for {
		next := b.next
		if b.empty() && last != nil {
			last.next = next
			r.blocks--
			if r.current == b {
				r.current = next
			}
		} else {
			last = b
		}
		if next == start {
			break
		}
		b = next
	}
	r.lastCollect = r.current
}
