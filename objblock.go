package gc

import "github.com/tracewell/cpgc/internal/bitmap"

// objBlock holds a fixed run of Gateway slots and a bitmap tracking which
// of them are in use. Blocks are linked into a circular ring by objRing.
type objBlock struct {
	slots [bitmap.Width]Gateway
	free  bitmap.Word
	next  *objBlock
}

func newObjBlock() *objBlock {
	b := &objBlock{free: bitmap.Empty}
	for i := range b.slots {
		b.slots[i].block = b
		b.slots[i].slot = i
	}
	return b
}

// claim reserves one free slot in the block and returns it, or nil if the
// block is full.
func (b *objBlock) claim() *Gateway {
	i := b.free.Claim()
	if i < 0 {
		return nil
	}
	return &b.slots[i]
}

// release returns a slot to the block's free set. The slot's Gateway
// fields are zeroed except for the block/slot back-pointers, which are
// invariant for the slot's lifetime.
func (b *objBlock) release(g *Gateway) {
	g.data = nil
	g.desc = Descriptor{}
	g.marked = false
	g.owned = false
	b.free.Release(g.slot)
}

// empty reports whether every slot in the block is free.
func (b *objBlock) empty() bool {
	return b.free == bitmap.Empty
}

// objRing is a circular linked list of objBlocks. current is where the
// next allocation attempt starts; lastCollect marks the block that was
// current right after the most recent sweep. alloc walks forward from
// current and only gives up and grows the ring once that walk would
// circle back to lastCollect, so a run of allocations between two
// collections keeps advancing through blocks a previous allocation in
// the same run already visited, rather than re-scanning from scratch and
// growing prematurely.
type objRing struct {
	current     *objBlock
	lastCollect *objBlock
	blocks      int
}

func newObjRing() *objRing {
	b := newObjBlock()
	b.next = b
	return &objRing{current: b, lastCollect: b, blocks: 1}
}

// insert adds a freshly allocated block into the ring immediately after
// current, and makes it current.
func (r *objRing) insert(b *objBlock) {
	b.next = r.current.next
	r.current.next = b
	r.current = b
	r.blocks++
}

// alloc claims a free slot, walking the ring and growing it with a new
// block once the walk would reach lastCollect without finding one. It
// never fails: new blocks come from the Go heap, not the arena. Arena
// exhaustion for an object's data bytes surfaces from the Engine's
// higher-level Alloc as ErrOOM, which is where OOM retry is handled.
func (r *objRing) alloc() *Gateway {
	for {
		if g := r.current.claim(); g != nil {
			return g
		}
		if r.current.next == r.lastCollect {
			break
		}
		r.current = r.current.next
	}
	b := newObjBlock()
	r.insert(b)
	return b.claim()
}

// each calls fn once per block in the ring, starting at and including
// current, stopping after one full lap.
func (r *objRing) each(fn func(*objBlock)) {
	start := r.current
	b := start
	for {
		next := b.next
		fn(b)
		b = next
		if b == start {
			return
		}
	}
}
