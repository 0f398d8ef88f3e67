package pl011

import (
	"testing"

	"bootconsole-go/drivers/bcmgpio"
	"bootconsole-go/platform"
	"bootconsole-go/x/mmio"
)

// fakeUART models the PL011 data path on a mmio.Sim: an RX FIFO of DR
// words (data plus error bits), a TX log, optional loopback, and a number
// of FR polls that report TXFF before space appears.
type fakeUART struct {
	sim      *mmio.Sim
	base     uint32
	rx       []uint32
	tx       []byte
	loopback bool
	txBusy   int
	frReads  int
	drReads  int
}

func newFake(t *testing.T) (*Device, *fakeUART) {
	t.Helper()
	plat, ok := platform.Lookup(platform.Pi2B)
	if !ok {
		t.Fatal("Pi2B descriptor missing")
	}
	f := &fakeUART{sim: mmio.NewSim(), base: plat.MMIOBase + BlockOffset}
	f.sim.OnRead(f.base+regFR, func(uint32) uint32 {
		f.frReads++
		var fr uint32
		if len(f.rx) == 0 {
			fr |= frRXFE
		}
		if f.txBusy > 0 {
			f.txBusy--
			fr |= frTXFF
		}
		return fr
	})
	f.sim.OnRead(f.base+regDR, func(uint32) uint32 {
		f.drReads++
		if len(f.rx) == 0 {
			return 0
		}
		v := f.rx[0]
		f.rx = f.rx[1:]
		return v
	})
	f.sim.OnWrite(f.base+regDR, func(_, v uint32) {
		f.tx = append(f.tx, byte(v))
		if f.loopback {
			f.rx = append(f.rx, v&drData)
		}
	})
	d := New(f.sim, plat, Config{GPIO: bcmgpio.Config{Delay: func(int) {}}})
	return d, f
}

func (f *fakeUART) push(words ...uint32) { f.rx = append(f.rx, words...) }
