// Package monitor is the interactive prompt the firmware runs on the serial
// console once the UART is up: a handful of diagnostic commands, no
// allocation after start-up and no fmt.
package monitor

import (
	"bytes"

	"bootconsole-go/drivers/pl011"
	"bootconsole-go/x/conv"
)

const prompt = "> "

type Monitor struct {
	dev   *pl011.Device
	con   pl011.Console
	clock uint32
	line  [80]byte
	out   []byte
}

// New wraps a configured device. clock is the value that was passed to
// Configure (0 for the default).
func New(dev *pl011.Device, clock uint32) *Monitor {
	return &Monitor{
		dev:   dev,
		con:   dev.Console(),
		clock: clock,
		out:   make([]byte, 0, 128),
	}
}

// Banner prints the start-up line. clockErr explains why the default clock
// is in use, if it is.
func (m *Monitor) Banner(clockErr error) {
	b := append(m.out[:0], "bootconsole "...)
	b = append(b, pl011.Version...)
	b = append(b, " on "...)
	b = append(b, m.dev.Platform().Name...)
	b = append(b, '\n')
	if clockErr != nil {
		b = append(b, "uart clock: default ("...)
		b = append(b, clockErr.Error()...)
		b = append(b, ")\n"...)
	}
	m.flush(b)
}

// Run serves commands forever.
func (m *Monitor) Run() {
	for {
		m.Step()
	}
}

// Step prompts, reads one line and executes it.
func (m *Monitor) Step() {
	m.con.WriteString(prompt)
	m.Exec(m.con.ReadLine(m.line[:], true))
}

// Exec runs a single command line.
func (m *Monitor) Exec(line []byte) {
	line = bytes.TrimSpace(line)
	cmd, arg := line, []byte(nil)
	if i := bytes.IndexByte(line, ' '); i >= 0 {
		cmd, arg = line[:i], bytes.TrimSpace(line[i+1:])
	}
	switch string(cmd) {
	case "":
	case "help", "?":
		m.con.WriteString("commands: help info stats echo <text>\n")
	case "info":
		m.info()
	case "stats":
		m.flush(append(m.dev.Stats().AppendTo(m.out[:0]), '\n'))
	case "echo":
		m.flush(append(append(m.out[:0], arg...), '\n'))
	default:
		b := append(m.out[:0], "unknown command: "...)
		b = append(b, cmd...)
		m.flush(append(b, '\n'))
	}
}

func (m *Monitor) info() {
	p := m.dev.Platform()
	div := m.dev.Divisor()
	clk := m.clock
	if clk == 0 {
		clk = pl011.DefaultClock
	}
	b := append(m.out[:0], "platform: "...)
	b = append(b, p.Name...)
	b = append(b, "\nmmio: "...)
	b = conv.AppendHex32(b, p.MMIOBase)
	b = append(b, "\nclock: "...)
	b = conv.AppendUint(b, uint64(clk))
	b = append(b, "\ndivisor: "...)
	b = conv.AppendUint(b, uint64(div.Integer))
	b = append(b, '+')
	b = conv.AppendUint(b, uint64(div.Fraction))
	b = append(b, "/64 ("...)
	b = conv.AppendUint(b, uint64(div.Baud(clk)))
	b = append(b, " baud)\nversion: "...)
	b = append(b, pl011.Version...)
	m.flush(append(b, '\n'))
}

func (m *Monitor) flush(b []byte) {
	m.con.Write(b)
	m.out = b[:0]
}
