//go:build !tinygo

package bcmgpio

var spinSink uint32

// Spin busy-waits for n iterations.
func Spin(n int) {
	for i := 0; i < n; i++ {
		spinSink++
	}
}
