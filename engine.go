package gc

import "errors"

// ErrOOM is returned by Alloc when the engine cannot satisfy an
// allocation even after running a collection.
var ErrOOM = errors.New("gc: out of memory")

// ErrReentrant is the panic value used when leak checks are enabled and a
// tracer or finalizer callback calls back into its own Engine.
var ErrReentrant = errors.New("gc: callback re-entered its engine")

// Engine owns one object heap and one root set. It is the sole entry point
// the host uses to allocate objects, anchor roots, and trigger collection.
//
// An Engine is not safe for concurrent use; see the package doc comment.
type Engine struct {
	objects   *objRing
	roots     *rootRing
	callbacks callbackTable

	guard   bool // from WithLeakChecks
	entered bool

	budget *int64 // from WithMemoryLimit, nil means unbounded

	stats stats
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMemoryLimit caps the engine's raw byte budget at n. Once the budget
// is exhausted, RawAlloc fails until a collection frees enough of it back.
// This exists chiefly so that out-of-memory retry behavior can be tested
// deterministically without exhausting real system memory.
func WithMemoryLimit(n int64) Option {
	return func(e *Engine) {
		b := n
		e.budget = &b
	}
}

// WithLeakChecks enables re-entrancy detection: if a tracer or finalizer
// callback calls back into the Engine that invoked it, the offending call
// panics with ErrReentrant instead of corrupting collector state.
func WithLeakChecks() Option {
	return func(e *Engine) {
		e.guard = true
	}
}

// NewEngine creates an Engine with one empty object block and one empty
// root block, ready to allocate.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		objects: newObjRing(),
		roots:   newRootRing(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterTracer records fn under a new tracer ID for use in Custom
// Descriptors, and returns that ID.
func (e *Engine) RegisterTracer(fn TracerFunc) uint16 {
	return e.callbacks.addTracer(fn)
}

// RegisterFinalizer records fn under a new finalizer ID for use in
// Descriptors of either Kind, and returns that ID.
func (e *Engine) RegisterFinalizer(fn FinalizerFunc) uint16 {
	return e.callbacks.addFinalizer(fn)
}

// FindTracer returns the ID fn was registered under with RegisterTracer,
// and false if fn was never registered on this Engine. Tracer ID 0 is a
// valid registered ID, not a "not found" sentinel, which is why this
// reports success with a second return value instead of folding it into
// the ID.
func (e *Engine) FindTracer(fn TracerFunc) (uint16, bool) {
	return e.callbacks.findTracer(fn)
}

// FindFinalizer returns the ID fn was registered under with
// RegisterFinalizer, and false if fn was never registered on this Engine.
func (e *Engine) FindFinalizer(fn FinalizerFunc) (uint16, bool) {
	return e.callbacks.findFinalizer(fn)
}

// NewRoot allocates a Root handle anchoring g. The Root survives until
// FreeRoot is called on it; until then it keeps g, and everything
// reachable from it, alive across collections.
func (e *Engine) NewRoot(g *Gateway) *Root {
	r := e.roots.alloc()
	r.target = g
	return r
}

// FreeRoot releases a Root handle. It does not collect anything by
// itself; whatever the Root anchored simply becomes collectible the next
// time Collect runs, if nothing else reaches it.
func (e *Engine) FreeRoot(r *Root) {
	r.block.release(r)
}

func (e *Engine) checkReentrant() {
	if e.guard && e.entered {
		panic(ErrReentrant)
	}
}
