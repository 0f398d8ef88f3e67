// Package serial is the workstation side of the console link: it opens the
// USB-serial adaptor wired to the board with the console's line settings
// and cleans up the byte stream for display.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"

	"bootconsole-go/drivers/pl011"
	"bootconsole-go/errcode"
)

// Config describes the host port.
type Config struct {
	Device      string
	Baud        int           // 0 means the console rate
	ReadTimeout time.Duration // 0 blocks until data arrives
}

// Port is an open serial port.
type Port interface {
	io.ReadWriteCloser
}

// portConfig maps Config onto tarm/serial with the console framing: 8N1.
func portConfig(cfg Config) (*serial.Config, error) {
	if cfg.Device == "" {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "open", Msg: "no device"}
	}
	baud := cfg.Baud
	if baud == 0 {
		baud = pl011.DefaultBaud
	}
	if baud < 0 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "open", Msg: "negative baud"}
	}
	return &serial.Config{
		Name:        cfg.Device,
		Baud:        baud,
		ReadTimeout: cfg.ReadTimeout,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
	}, nil
}

// Open opens the port described by cfg.
func Open(cfg Config) (Port, error) {
	pc, err := portConfig(cfg)
	if err != nil {
		return nil, err
	}
	p, err := serial.OpenPort(pc)
	if err != nil {
		return nil, &errcode.E{C: errcode.PortOpen, Op: "open", Msg: cfg.Device, Err: fmt.Errorf("tarm/serial: %w", err)}
	}
	return p, nil
}
