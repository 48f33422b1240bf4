package gc

import "github.com/tracewell/cpgc/internal/bitmap"

// Root is a stable handle that anchors a Gateway as live for the purposes
// of tracing, independent of whether anything else in the object graph
// still points to it. The host typically holds one Root per local variable
// or per entry in its own root set.
type Root struct {
	target *Gateway
	block  *rootBlock
	slot   int
}

// Get returns the Gateway a Root currently anchors, or nil if the Root has
// been freed or never set.
func (r *Root) Get() *Gateway {
	return r.target
}

// Set repoints a Root at a different Gateway. A nil target is valid and
// anchors nothing.
func (r *Root) Set(g *Gateway) {
	r.target = g
}

// rootBlock mirrors objBlock's bitmap-registry shape but holds Root slots
// instead of Gateway slots, since roots are explicitly managed by the host
// rather than bump-allocated per object.
type rootBlock struct {
	slots [bitmap.Width]Root
	free  bitmap.Word
	next  *rootBlock
}

func newRootBlock() *rootBlock {
	b := &rootBlock{free: bitmap.Empty}
	for i := range b.slots {
		b.slots[i].block = b
		b.slots[i].slot = i
	}
	return b
}

func (b *rootBlock) claim() *Root {
	i := b.free.Claim()
	if i < 0 {
		return nil
	}
	return &b.slots[i]
}

func (b *rootBlock) release(r *Root) {
	r.target = nil
	b.free.Release(r.slot)
}

func (b *rootBlock) empty() bool {
	return b.free == bitmap.Empty
}

// rootRing is the Root-handle analogue of objRing.
// rootRing mirrors objRing's lastCollect-bounded growth: alloc walks
// forward from current and only grows the ring once that walk would
// circle back to the block that was current right after the last
// collection.
type rootRing struct {
	current     *rootBlock
	lastCollect *rootBlock
	blocks      int
}

func newRootRing() *rootRing {
	b := newRootBlock()
	b.next = b
	return &rootRing{current: b, lastCollect: b, blocks: 1}
}

func (r *rootRing) insert(b *rootBlock) {
	b.next = r.current.next
	r.current.next = b
	r.current = b
	r.blocks++
}

func (r *rootRing) alloc() *Root {
	for {
		if h := r.current.claim(); h != nil {
			return h
		}
		if r.current.next == r.lastCollect {
			break
		}
		r.current = r.current.next
	}
	b := newRootBlock()
	r.insert(b)
	return b.claim()
}

func (r *rootRing) each(fn func(*rootBlock)) {
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
