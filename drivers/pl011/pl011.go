// Package pl011 is a polled console driver for the ARM PL011 UART found on
// the BCM283x. It brings UART0 up as 8N1 at DefaultBaud with the FIFOs on
// and moves single bytes by spinning on the flag register.
//
// There are no interrupts, no software buffers and no timeouts: PutByte
// waits for FIFO space and GetByte waits for data, forever if need be.
// Receive errors are counted in Stats and never alter the returned byte.
//
// A Device assumes a single caller; it does no locking.
package pl011

import (
	"bootconsole-go/drivers/bcmgpio"
	"bootconsole-go/platform"
	"bootconsole-go/x/mmio"
)

// Config holds optional settings. The zero value is usable.
type Config struct {
	GPIO bcmgpio.Config
}

type Device struct {
	regs  mmio.Block
	gpio  *bcmgpio.Mux
	plat  platform.Descriptor
	stats Stats
}

// New binds a driver to UART0 of the board described by plat. It does not
// touch the hardware; call Configure.
func New(bus mmio.Bus, plat platform.Descriptor, cfg Config) *Device {
	return &Device{
		regs: mmio.NewBlock(bus, plat.MMIOBase+BlockOffset),
		gpio: bcmgpio.New(bus, plat.MMIOBase, cfg.GPIO),
		plat: plat,
	}
}

// Configure programs the UART from scratch for uartClock (Hz; 0 means
// DefaultClock). Every call replays the whole sequence regardless of the
// current state, and the order of the register writes is significant:
// the UART must be off before its pins or divisors change.
func (d *Device) Configure(uartClock uint32) {
	d.regs.Write(regCR, 0)

	d.gpio.ConfigureUART0()

	// Earlier boot stages may have left interrupts pending.
	d.regs.Write(regICR, icrAll)

	div := CalcDivisor(uartClock, DefaultBaud)
	d.regs.Write(regIBRD, uint32(div.Integer))
	d.regs.Write(regFBRD, uint32(div.Fraction))

	// LCRH must follow the divisor writes; the PL011 latches them on it.
	d.regs.Write(regLCRH, lcrhWLEN8|lcrhFEN)

	d.regs.Write(regCR, crUARTEN|crTXE|crRXE)
}

// Enabled reports whether the UART and both directions are switched on.
func (d *Device) Enabled() bool {
	const want = crUARTEN | crTXE | crRXE
	return d.regs.Read(regCR)&want == want
}

// Divisor reads back the programmed baud divisor.
func (d *Device) Divisor() Divisor {
	return Divisor{
		Integer:  uint16(d.regs.Read(regIBRD) & ibrdMax),
		Fraction: uint8(d.regs.Read(regFBRD) & fbrdMax),
	}
}

// Platform returns the board descriptor the device was built for.
func (d *Device) Platform() platform.Descriptor { return d.plat }

// Stats returns a snapshot of the link counters.
func (d *Device) Stats() Stats { return d.stats }
