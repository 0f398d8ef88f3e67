package pl011

import "tinygo.org/x/drivers"

var _ drivers.UART = (*Device)(nil)

// PutByte waits for room in the TX FIFO and queues b.
func (d *Device) PutByte(b byte) {
	for d.regs.Read(regFR)&frTXFF != 0 {
		// wait for TX FIFO space
	}
	d.regs.Write(regDR, uint32(b))
	d.stats.TxBytes++
}

// PutChar sends c as 7-bit text. A line feed is followed by a carriage
// return so plain terminals start a fresh line.
func (d *Device) PutChar(c byte) {
	c &= 0x7f
	d.PutByte(c)
	if c == '\n' {
		d.PutByte('\r')
	}
}

// GetByte waits for a received byte and returns it. Error flags that come
// with the byte are counted; the byte is returned either way.
func (d *Device) GetByte() byte {
	for d.regs.Read(regFR)&frRXFE != 0 {
		// wait for RX data
	}
	dr := d.regs.Read(regDR)
	d.stats.record(dr)
	return byte(dr & drData)
}

// GetChar is GetByte reduced to 7 bits.
func (d *Device) GetChar() byte { return d.GetByte() & 0x7f }

// HasData reports whether the RX FIFO holds at least one byte. It never
// consumes data.
func (d *Device) HasData() bool { return d.regs.Read(regFR)&frRXFE == 0 }

// Write sends p as raw bytes. It never fails.
func (d *Device) Write(p []byte) (int, error) {
	for _, b := range p {
		d.PutByte(b)
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (d *Device) WriteByte(b byte) error {
	d.PutByte(b)
	return nil
}

// Read blocks for the first byte, then drains whatever else is already in
// the FIFO, up to len(p).
func (d *Device) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = d.GetByte()
	n := 1
	for n < len(p) && d.HasData() {
		p[n] = d.GetByte()
		n++
	}
	return n, nil
}

// ReadByte implements io.ByteReader; it blocks like GetByte.
func (d *Device) ReadByte() (byte, error) { return d.GetByte(), nil }

// Buffered reports 1 when data is waiting and 0 otherwise; the PL011 does
// not expose a FIFO level.
func (d *Device) Buffered() int {
	if d.HasData() {
		return 1
	}
	return 0
}
