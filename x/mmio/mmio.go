// Package mmio is the only place that touches memory-mapped hardware.
//
// Drivers never form addresses themselves; they hold a Block bound to a
// peripheral base and name registers by offset. Every access goes through
// the Bus and is computed fresh, so nothing is cached between calls.
package mmio

// Bus performs 32-bit aligned loads and stores at absolute addresses.
// Implementations must not reorder, merge or drop accesses.
type Bus interface {
	Read(addr uint32) uint32
	Write(addr, val uint32)
}

// Block is a register window at Base on Bus.
type Block struct {
	Bus  Bus
	Base uint32
}

// NewBlock binds a register window to a base address.
func NewBlock(bus Bus, base uint32) Block { return Block{Bus: bus, Base: base} }

// Addr returns the absolute address of the register at off.
func (b Block) Addr(off uint32) uint32 { return b.Base + off }

func (b Block) Read(off uint32) uint32 { return b.Bus.Read(b.Base + off) }

func (b Block) Write(off, val uint32) { b.Bus.Write(b.Base+off, val) }

// Update read-modify-writes the register at off: bits in clear are
// cleared, then bits in set are set.
func (b Block) Update(off, clear, set uint32) {
	v := b.Read(off)
	b.Write(off, (v&^clear)|set)
}
