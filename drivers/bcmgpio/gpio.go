package bcmgpio

import (
	"bootconsole-go/x/mathx"
	"bootconsole-go/x/mmio"
)

// Config tunes the pull-clock timing. The zero value is usable.
type Config struct {
	// HoldCycles is the setup and hold time around the pull clock, in
	// iterations of Delay. Values below MinHoldCycles are raised to it.
	HoldCycles int
	// Delay burns the given number of iterations. Defaults to Spin. A
	// board with a running timer may substitute a time-based wait; Spin is
	// not calibrated to core speed.
	Delay func(cycles int)
}

// Mux programs pin functions and pulls through the GPIO register block.
type Mux struct {
	regs  mmio.Block
	hold  int
	delay func(int)
}

// New binds a Mux to the GPIO block of the peripheral window at mmioBase.
func New(bus mmio.Bus, mmioBase uint32, cfg Config) *Mux {
	m := &Mux{
		regs:  mmio.NewBlock(bus, mmioBase+BlockOffset),
		hold:  mathx.AtLeast(cfg.HoldCycles, MinHoldCycles),
		delay: cfg.Delay,
	}
	if m.delay == nil {
		m.delay = Spin
	}
	return m
}

// SetFunction selects fn for each pin. Pins sharing a GPFSEL register are
// updated with a single read-modify-write. Pins >= NumPins are ignored.
func (m *Mux) SetFunction(fn Function, pins ...uint8) {
	var clr, set [NumPins/pinsPerFSEL + 1]uint32
	var touched [len(clr)]bool
	for _, p := range pins {
		if p >= NumPins {
			continue
		}
		r, shift := p/pinsPerFSEL, uint32(p%pinsPerFSEL)*fselBits
		clr[r] |= fselMask << shift
		set[r] = set[r]&^(fselMask<<shift) | uint32(fn&fselMask)<<shift
		touched[r] = true
	}
	for r := range touched {
		if touched[r] {
			m.regs.Update(regFSEL0+uint32(r)*4, clr[r], set[r])
		}
	}
}

// Function reads back the current function of pin.
func (m *Mux) Function(pin uint8) Function {
	if pin >= NumPins {
		return Input
	}
	shift := uint32(pin%pinsPerFSEL) * fselBits
	v := m.regs.Read(regFSEL0 + uint32(pin/pinsPerFSEL)*4)
	return Function((v >> shift) & fselMask)
}

// SetPull applies pull to the pins selected by the two bank masks (bit n
// of bank0 is GPIO n, bit n of bank1 is GPIO 32+n). The sequence is fixed
// by the hardware: code, wait, clock on, wait, clock off.
func (m *Mux) SetPull(pull Pull, bank0, bank1 uint32) {
	m.regs.Write(regPUD, uint32(pull))
	m.delay(m.hold)
	if bank0 != 0 {
		m.regs.Write(regPUDCLK0, bank0)
	}
	if bank1 != 0 {
		m.regs.Write(regPUDCLK1, bank1)
	}
	m.delay(m.hold)
	if bank0 != 0 {
		m.regs.Write(regPUDCLK0, 0)
	}
	if bank1 != 0 {
		m.regs.Write(regPUDCLK1, 0)
	}
}

// DisablePulls turns the pull resistors off for the bank-0 pins in mask.
func (m *Mux) DisablePulls(mask uint32) { m.SetPull(PullOff, mask, 0) }

// ConfigureUART0 routes TXD0/RXD0 to the PL011 and releases their pulls.
func (m *Mux) ConfigureUART0() {
	m.SetFunction(Alt0, PinTXD0, PinRXD0)
	m.DisablePulls(1<<PinTXD0 | 1<<PinRXD0)
}
