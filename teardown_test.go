package gc

import (
	"testing"
	"unsafe"
)

func TestDestroyFinalizesRootedObjects(t *testing.T) {
	e := NewEngine()
	ran := false
	finID := e.RegisterFinalizer(func(unsafe.Pointer) { ran = true })
	tracerID := e.RegisterTracer(func(unsafe.Pointer, MarkFunc) {})
	g := e.Give(nil, Descriptor{Kind: Custom, TracerID: tracerID, FinalizerID: finID})
	e.NewRoot(g)

	e.Destroy()
	if !ran {
		t.Fatal("Destroy did not finalize a still-rooted object")
	}
}

func TestDestroyFinalizesEveryLiveObjectOnce(t *testing.T) {
	e := NewEngine()
	count := 0
	finID := e.RegisterFinalizer(func(unsafe.Pointer) { count++ })
	for i := 0; i < 5; i++ {
		e.Give(nil, Descriptor{Kind: Custom, FinalizerID: finID})
	}
	e.Destroy()
	if count != 5 {
		t.Fatalf("finalized %d objects, want 5", count)
	}
}
