//go:build !tinygo

// Command console-term attaches a workstation terminal to the board's
// serial console through a USB-serial adaptor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"bootconsole-go/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", 0, "Baud rate (0 = console default, 115200)")
	keepCR  = flag.Bool("keep-cr", false, "Pass carriage returns from the board through unchanged")
	timeout = flag.Duration("timeout", 0, "Exit if the board is silent this long (0 = never)")
)

func main() {
	flag.Parse()

	port, err := serial.Open(serial.Config{Device: *device, Baud: *baud, ReadTimeout: *timeout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Fprintf(os.Stderr, "Connected to %s (Ctrl-D to quit)\n", *device)

	var out io.Writer = os.Stdout
	if !*keepCR {
		out = &serial.CRStripper{W: os.Stdout}
	}

	done := make(chan error, 2)
	go func() {
		_, err := io.Copy(out, readUntilSilent(port, *timeout))
		done <- err
	}()
	go func() {
		_, err := io.Copy(&serial.LineEndings{W: port}, os.Stdin)
		done <- err
	}()

	if err := <-done; err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readUntilSilent turns tarm/serial's zero-byte timeout reads into EOF so
// io.Copy returns.
func readUntilSilent(r io.Reader, timeout time.Duration) io.Reader {
	if timeout <= 0 {
		return r
	}
	return silentReader{r}
}

type silentReader struct{ r io.Reader }

func (s silentReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}
