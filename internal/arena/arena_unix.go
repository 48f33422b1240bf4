//go:build unix

package arena

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func init() {
	if n := unix.Getpagesize(); n > 0 {
		pageSize = uintptr(n)
	}
}

func allocPages(n uintptr) unsafe.Pointer {
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func freePages(p unsafe.Pointer, n uintptr) {
	b := unsafe.Slice((*byte)(p), n)
	// Errors here mean the mapping is already gone or was never ours; there
	// is nothing more to do from inside a sweep.
	_ = unix.Munmap(b)
}
