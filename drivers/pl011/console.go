package pl011

// Console is a text writer over a Device: 7-bit characters with LF sent as
// CRLF. Use the Device itself for binary data.
type Console struct{ d *Device }

// Console returns a text writer for d.
func (d *Device) Console() Console { return Console{d: d} }

func (c Console) Write(p []byte) (int, error) {
	for _, b := range p {
		c.d.PutChar(b)
	}
	return len(p), nil
}

func (c Console) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		c.d.PutChar(s[i])
	}
	return len(s), nil
}

// ReadLine collects characters into buf until CR or LF and returns the
// line without the terminator. Characters beyond len(buf) are dropped.
// When echo is set, each accepted character is written back.
func (c Console) ReadLine(buf []byte, echo bool) []byte {
	n := 0
	for {
		ch := c.d.GetChar()
		switch ch {
		case '\r', '\n':
			if echo {
				c.d.PutChar('\n')
			}
			return buf[:n]
		case 0x08, 0x7f:
			if n > 0 {
				n--
				if echo {
					c.d.PutChar(0x08)
					c.d.PutChar(' ')
					c.d.PutChar(0x08)
				}
			}
			continue
		}
		if n < len(buf) {
			buf[n] = ch
			n++
			if echo {
				c.d.PutChar(ch)
			}
		}
	}
}
