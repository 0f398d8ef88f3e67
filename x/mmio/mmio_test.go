package mmio

import "testing"

func TestBlockAddressesAreBasePlusOffset(t *testing.T) {
	s := NewSim()
	b := NewBlock(s, 0x3f201000)

	b.Write(0x24, 7)
	if got := s.Peek(0x3f201024); got != 7 {
		t.Fatalf("Peek = %d, want 7", got)
	}
	if got := b.Read(0x24); got != 7 {
		t.Fatalf("Read = %d, want 7", got)
	}
	if b.Addr(0x30) != 0x3f201030 {
		t.Fatalf("Addr = %#x", b.Addr(0x30))
	}
}

func TestBlockReadsEveryTime(t *testing.T) {
	s := NewSim()
	b := NewBlock(s, 0x1000)
	n := uint32(0)
	s.OnRead(0x1018, func(uint32) uint32 { n++; return n })

	if b.Read(0x18) != 1 || b.Read(0x18) != 2 {
		t.Fatal("reads were not forwarded to the bus on each call")
	}
	if len(s.Log()) != 2 {
		t.Fatalf("log len = %d, want 2", len(s.Log()))
	}
}

func TestUpdateIsReadModifyWrite(t *testing.T) {
	s := NewSim()
	b := NewBlock(s, 0)
	s.Poke(4, 0xffff_ffff)

	b.Update(4, 0x3f<<12, 0x24<<12)

	if got, want := s.Peek(4), uint32(0xfffc_0fff|0x24<<12); got != want {
		t.Fatalf("Update result = %#x, want %#x", got, want)
	}
	log := s.Log()
	if len(log) != 2 || log[0].Op != OpRead || log[1].Op != OpWrite {
		t.Fatalf("unexpected access sequence %v", log)
	}
}

func TestWriteHookSuppressesStorage(t *testing.T) {
	s := NewSim()
	var seen []uint32
	s.OnWrite(0x44, func(_, v uint32) { seen = append(seen, v) })

	s.Write(0x44, 0x7ff)
	if s.Peek(0x44) != 0 {
		t.Fatal("hooked write reached storage")
	}
	if len(seen) != 1 || seen[0] != 0x7ff {
		t.Fatalf("hook saw %v", seen)
	}
	if w := s.Writes(0x44); len(w) != 1 || w[0] != 0x7ff {
		t.Fatalf("Writes = %v", w)
	}
	s.ResetLog()
	if len(s.WriteOrder()) != 0 {
		t.Fatal("ResetLog left entries behind")
	}
}
