package gc

import (
	"unsafe"

	"github.com/zephyrtronium/contains"
)

// leakCheck wraps one collection's finalizer calls with a transient set
// of the addresses finalized so far, so that if the same address is
// finalized twice in a single sweep — which would only happen if sweep's
// own bookkeeping were broken — it panics loudly instead of silently
// double-freeing host resources.
//
// The set is rebuilt fresh for every collection rather than kept on the
// Engine: a freed Gateway's slot is reused by a later allocation, so a
// persistent set would eventually flag an address for being finalized
// twice across two unrelated objects that merely happened to share a
// slot.
type leakCheck struct {
	seen contains.Set
}

func newLeakCheck() *leakCheck {
	return &leakCheck{seen: contains.Set{}}
}

func (l *leakCheck) markFinalized(p unsafe.Pointer) {
	if l == nil || p == nil {
		return
	}
	if !l.seen.Add(uintptr(p)) {
		panic("gc: address finalized twice in one sweep")
	}
}
