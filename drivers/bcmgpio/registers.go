// Package bcmgpio drives the BCM283x GPIO block far enough to hand pins to
// a peripheral: function select and the pull-up/down clock sequence.
package bcmgpio

// Offset of the GPIO block from the peripheral base.
const BlockOffset = 0x00200000

const (
	regFSEL0   = 0x00 // GPFSEL0..5, 4 bytes apart, 10 pins each
	regPUD     = 0x94 // GPPUD
	regPUDCLK0 = 0x98 // GPPUDCLK0, pins 0..31
	regPUDCLK1 = 0x9c // GPPUDCLK1, pins 32..53

	pinsPerFSEL = 10
	fselBits    = 3
	fselMask    = 0x7
)

// NumPins is the number of GPIO lines on the BCM283x.
const NumPins = 54

// MinHoldCycles is the vendor-documented minimum setup/hold for the pull
// clock, in spin iterations.
const MinHoldCycles = 150

// Function is a 3-bit GPFSEL field value.
type Function uint8

const (
	Input  Function = 0b000
	Output Function = 0b001
	Alt0   Function = 0b100
	Alt1   Function = 0b101
	Alt2   Function = 0b110
	Alt3   Function = 0b111
	Alt4   Function = 0b011
	Alt5   Function = 0b010
)

// Pull is a GPPUD control code.
type Pull uint8

const (
	PullOff  Pull = 0x0
	PullDown Pull = 0x1
	PullUp   Pull = 0x2
)

// UART0 (PL011) lines on the 40-pin header, ALT0.
const (
	PinTXD0 uint8 = 14
	PinRXD0 uint8 = 15
)
