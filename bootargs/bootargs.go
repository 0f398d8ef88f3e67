// Package bootargs reads the few kernel command line settings the console
// cares about. It sits outside the driver: the driver only ever receives
// the numeric clock.
package bootargs

import (
	"strings"

	"github.com/google/shlex"

	"bootconsole-go/errcode"
	"bootconsole-go/platform"
	"bootconsole-go/x/strconvx"
)

// Args is a tokenised command line.
type Args []string

// Parse splits a command line into words, honouring shell-style quoting.
func Parse(cmdline string) (Args, error) {
	words, err := shlex.Split(cmdline)
	if err != nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "parse", Msg: "unbalanced quoting", Err: err}
	}
	return Args(words), nil
}

// Value returns the text after prefix in the last word that starts with
// it. Later words override earlier ones, as with the kernel.
func (a Args) Value(prefix string) (string, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if strings.HasPrefix(a[i], prefix) {
			return a[i][len(prefix):], true
		}
	}
	return "", false
}

// UARTClock returns the clock given as <token><hz>. Decimal and 0x hex
// are accepted.
func (a Args) UARTClock(token string) (uint32, error) {
	if token == "" {
		return 0, &errcode.E{C: errcode.Unsupported, Op: "uart_clock", Msg: "board has no clock token"}
	}
	v, ok := a.Value(token)
	if !ok {
		return 0, &errcode.E{C: errcode.NotFound, Op: "uart_clock", Msg: token}
	}
	n, err := strconvx.ParseUint(v, 0, 64)
	if err != nil {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: "uart_clock", Msg: v, Err: err}
	}
	if n > 0xffff_ffff {
		return 0, &errcode.E{C: errcode.OutOfRange, Op: "uart_clock", Msg: v}
	}
	return uint32(n), nil
}

// ClockFor extracts the UART clock for board d from cmdline. On any error
// it returns 0, which the driver treats as its default clock, together
// with the reason.
func ClockFor(cmdline string, d platform.Descriptor) (uint32, error) {
	a, err := Parse(cmdline)
	if err != nil {
		return 0, err
	}
	return a.UARTClock(d.ClockToken)
}
