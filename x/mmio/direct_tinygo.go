//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Direct is the real bus: each call is exactly one volatile 32-bit access.
type Direct struct{}

func (Direct) Read(addr uint32) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
}

func (Direct) Write(addr, val uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), val)
}
