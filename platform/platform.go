// Package platform describes the boards the console driver can be built for.
//
// A board is picked at build time with exactly one of the tags below; the
// selected descriptor is exposed as Selected. Adding a board means adding a
// Board constant, a table row and a selected_<tag>.go file; no driver code
// changes.
//
//	pi1bplus  Raspberry Pi 1 B+  (BCM2835, peripherals at 0x20000000)
//	pi2b      Raspberry Pi 2 B   (BCM2836, peripherals at 0x3f000000)
package platform

// Board identifies a supported board variant.
type Board uint8

const (
	Pi1BPlus Board = iota + 1
	Pi2B
)

// Descriptor is the fixed per-board parameter set.
type Descriptor struct {
	MMIOBase uint32 // peripheral base as seen by the ARM core
	Name     string
	// ClockToken prefixes the UART input clock on the kernel command line
	// (e.g. "bcm2708.uart_clock=48000000"). Empty if the board has none.
	ClockToken string
}

var descriptors = [...]Descriptor{
	Pi1BPlus: {MMIOBase: 0x20000000, Name: "Raspberry Pi", ClockToken: "bcm2708.uart_clock="},
	Pi2B:     {MMIOBase: 0x3f000000, Name: "Raspberry Pi2", ClockToken: "bcm2709.uart_clock="},
}

// Boards lists every known variant in declaration order.
func Boards() []Board { return []Board{Pi1BPlus, Pi2B} }

// Lookup returns the descriptor for b.
func Lookup(b Board) (Descriptor, bool) {
	if b == 0 || int(b) >= len(descriptors) {
		return Descriptor{}, false
	}
	return descriptors[b], true
}

func (b Board) String() string {
	switch b {
	case Pi1BPlus:
		return "pi1bplus"
	case Pi2B:
		return "pi2b"
	}
	return "unknown"
}

// HasClockToken reports whether the board publishes a clock override token.
func (d Descriptor) HasClockToken() bool { return d.ClockToken != "" }
