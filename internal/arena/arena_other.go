//go:build !unix && !windows

package arena

import (
	"sync"
	"unsafe"
)

// Platforms without a raw mmap-alike (plan9, js/wasm) fall back to ordinary
// Go-managed byte slices. Since the engine still addresses this memory with
// unsafe.Pointer arithmetic and expects it to be stable until Free, pin is
// used to keep the backing array from being moved or collected by the Go
// runtime in the meantime.
var pin sync.Map // unsafe.Pointer -> []byte

func allocPages(n uintptr) unsafe.Pointer {
	b := make([]byte, n)
	p := unsafe.Pointer(&b[0])
	pin.Store(p, b)
	return p
}

func freePages(p unsafe.Pointer, _ uintptr) {
	pin.Delete(p)
}
