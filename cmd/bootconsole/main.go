//go:build tinygo && (pi1bplus || pi2b)

// Command bootconsole is the board firmware: it brings up UART0 as the
// serial console and serves the diagnostic monitor on it.
//
//	tinygo build -tags pi2b -target <pi-target> \
//	    -ldflags "-X 'main.cmdline=bcm2709.uart_clock=48000000'" ./cmd/bootconsole
package main

import (
	"bootconsole-go/bootargs"
	"bootconsole-go/drivers/pl011"
	"bootconsole-go/platform"
	"bootconsole-go/services/monitor"
	"bootconsole-go/x/mmio"
)

// cmdline is the kernel-style command line the loader handed over. Builds
// without a loader set it at link time; empty means "use defaults".
var cmdline string

func main() {
	clk, err := bootargs.ClockFor(cmdline, platform.Selected)

	dev := pl011.New(mmio.Direct{}, platform.Selected, pl011.Config{})
	dev.Configure(clk)

	m := monitor.New(dev, clk)
	m.Banner(err)
	m.Run()
}
