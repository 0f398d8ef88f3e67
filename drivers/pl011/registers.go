package pl011

// Offset of UART0 from the peripheral base.
const BlockOffset = 0x00201000

// Register offsets (32-bit).
const (
	regDR   = 0x00 // data; reads carry the error flags in bits 8..11
	regFR   = 0x18 // flags
	regIBRD = 0x24 // integer baud divisor
	regFBRD = 0x28 // fractional baud divisor
	regLCRH = 0x2c // line control
	regCR   = 0x30 // control
	regICR  = 0x44 // interrupt clear
)

// DR bits.
const (
	drData = 0x0ff
	drFE   = 0x100 // framing error
	drPE   = 0x200 // parity error
	drBE   = 0x400 // break error
	drOE   = 0x800 // overrun error
)

// FR bits.
const (
	frRXFE = 0x10 // RX fifo empty
	frTXFF = 0x20 // TX fifo full
)

// LCRH bits.
const (
	lcrhFEN   = 0x10 // fifo enable
	lcrhWLEN8 = 0x60 // 8 data bits
)

// CR bits.
const (
	crUARTEN = 0x001
	crTXE    = 0x100
	crRXE    = 0x200
)

// icrAll clears every interrupt source (bits 0..10).
const icrAll = 0x7ff

// Field widths of the divisor registers.
const (
	ibrdMax = 0xffff
	fbrdMax = 0x3f
)
