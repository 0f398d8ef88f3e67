//go:build tinygo

package bcmgpio

import "runtime/volatile"

var spinSink uint32

// Spin busy-waits for n iterations. The volatile store keeps the compiler
// from collapsing the loop.
func Spin(n int) {
	for i := 0; i < n; i++ {
		volatile.StoreUint32(&spinSink, uint32(i))
	}
}
