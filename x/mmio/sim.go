package mmio

// Op is the kind of a recorded bus access.
type Op uint8

const (
	OpRead Op = iota
	OpWrite
)

func (o Op) String() string {
	if o == OpWrite {
		return "W"
	}
	return "R"
}

// Access is one entry in a Sim's log.
type Access struct {
	Op   Op
	Addr uint32
	Val  uint32
}

// Sim is a host-side register file. It records every access in program
// order and lets callers model side effects (FIFOs, status flags,
// write-one-to-clear bits) with per-address hooks.
type Sim struct {
	regs    map[uint32]uint32
	onRead  map[uint32]func(addr uint32) uint32
	onWrite map[uint32]func(addr, val uint32)
	log     []Access
}

func NewSim() *Sim {
	return &Sim{
		regs:    make(map[uint32]uint32),
		onRead:  make(map[uint32]func(uint32) uint32),
		onWrite: make(map[uint32]func(uint32, uint32)),
	}
}

func (s *Sim) Read(addr uint32) uint32 {
	v := s.regs[addr]
	if h := s.onRead[addr]; h != nil {
		v = h(addr)
	}
	s.log = append(s.log, Access{Op: OpRead, Addr: addr, Val: v})
	return v
}

func (s *Sim) Write(addr, val uint32) {
	s.log = append(s.log, Access{Op: OpWrite, Addr: addr, Val: val})
	if h := s.onWrite[addr]; h != nil {
		h(addr, val)
		return
	}
	s.regs[addr] = val
}

// OnRead replaces plain storage reads at addr with h.
func (s *Sim) OnRead(addr uint32, h func(addr uint32) uint32) { s.onRead[addr] = h }

// OnWrite replaces plain storage writes at addr with h. The hook decides
// whether anything is stored (see Poke).
func (s *Sim) OnWrite(addr uint32, h func(addr, val uint32)) { s.onWrite[addr] = h }

// Peek and Poke access storage without logging or hooks.
func (s *Sim) Peek(addr uint32) uint32      { return s.regs[addr] }
func (s *Sim) Poke(addr uint32, val uint32) { s.regs[addr] = val }

// Log returns the accesses recorded since the last ResetLog.
func (s *Sim) Log() []Access { return s.log }

func (s *Sim) ResetLog() { s.log = s.log[:0] }

// Writes returns the values written to addr, oldest first.
func (s *Sim) Writes(addr uint32) []uint32 {
	var out []uint32
	for _, a := range s.log {
		if a.Op == OpWrite && a.Addr == addr {
			out = append(out, a.Val)
		}
	}
	return out
}

// WriteOrder returns the addresses of all writes, oldest first.
func (s *Sim) WriteOrder() []uint32 {
	var out []uint32
	for _, a := range s.log {
		if a.Op == OpWrite {
			out = append(out, a.Addr)
		}
	}
	return out
}
