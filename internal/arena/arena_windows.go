//go:build windows

package arena

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func init() {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	if info.PageSize > 0 {
		pageSize = uintptr(info.PageSize)
	}
}

func allocPages(n uintptr) unsafe.Pointer {
	addr, err := windows.VirtualAlloc(0, n, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(addr)
}

func freePages(p unsafe.Pointer, _ uintptr) {
	// MEM_RELEASE requires the original base address and a size of 0.
	_ = windows.VirtualFree(uintptr(p), 0, windows.MEM_RELEASE)
}
