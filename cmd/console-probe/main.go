//go:build pico

// Command console-probe runs on a Raspberry Pi Pico wired to the board's
// console pins (Pico GP0/GP1 to the board's RXD0/TXD0) and checks the link
// from the far end: line rate, echo of typed characters, and LF->CRLF on
// everything the board sends.
package main

import (
	"bytes"
	"context"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"machine"

	"bootconsole-go/drivers/pl011"
)

func main() {
	println("[probe] boot …")
	time.Sleep(1500 * time.Millisecond)

	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{BaudRate: pl011.DefaultBaud, TX: machine.GP0, RX: machine.GP1}); err != nil {
		println("[probe] FAIL: configure:", err.Error())
		return
	}

	// Drain whatever the board printed before we were listening.
	drain(u, 300*time.Millisecond)

	pass := 0
	for i, c := range []struct{ send, want string }{
		{"\r", "> "},
		{"echo probe-123\r", "probe-123\n\r"},
		{"stats\r", "rx="},
		{"bogus\r", "unknown command: bogus\n\r"},
	} {
		got := exchange(u, []byte(c.send), 2*time.Second)
		ok := bytes.Contains(got, []byte(c.want)) && crlfOK(got)
		if ok {
			pass++
			println("[probe] case", i, "PASS")
		} else {
			println("[probe] case", i, "FAIL: got", string(got))
		}
	}
	println("[probe] done:", pass, "passed")
}

// exchange sends p and collects replies until the line has been quiet for
// 100ms or the deadline passes.
func exchange(u *uartx.UART, p []byte, d time.Duration) []byte {
	_, _ = u.Write(p)
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	var got []byte
	for {
		qctx, qcancel := context.WithTimeout(ctx, 100*time.Millisecond)
		b, err := u.ReadByteBlocking(qctx)
		qcancel()
		if err != nil {
			return got
		}
		got = append(got, b)
	}
}

func drain(u *uartx.UART, d time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	for {
		if _, err := u.ReadByteBlocking(ctx); err != nil {
			return
		}
	}
}

// crlfOK reports whether every LF in p is immediately followed by CR.
func crlfOK(p []byte) bool {
	for i, b := range p {
		if b == '\n' && (i+1 >= len(p) || p[i+1] != '\r') {
			return false
		}
	}
	return true
}
