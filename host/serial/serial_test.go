package serial

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tarm/serial"

	"bootconsole-go/errcode"
)

func TestPortConfigDefaults(t *testing.T) {
	pc, err := portConfig(Config{Device: "/dev/ttyUSB0"})
	if err != nil {
		t.Fatal(err)
	}
	if pc.Name != "/dev/ttyUSB0" || pc.Baud != 115200 {
		t.Fatalf("got %+v", pc)
	}
	if pc.Size != 8 || pc.Parity != serial.ParityNone || pc.StopBits != serial.Stop1 {
		t.Fatalf("framing is not 8N1: %+v", pc)
	}
	pc, _ = portConfig(Config{Device: "COM3", Baud: 9600})
	if pc.Baud != 9600 {
		t.Fatalf("baud override ignored: %d", pc.Baud)
	}
}

func TestPortConfigRejects(t *testing.T) {
	if _, err := portConfig(Config{}); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("empty device: %v", err)
	}
	if _, err := portConfig(Config{Device: "x", Baud: -1}); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("negative baud: %v", err)
	}
}

func TestCRStripper(t *testing.T) {
	var out bytes.Buffer
	s := &CRStripper{W: &out}
	n, err := s.Write([]byte("ok\n\r> "))
	if err != nil || n != 6 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if n, _ := s.Write([]byte("\r")); n != 1 {
		t.Fatal("a lone CR should still be reported as written")
	}
	if got := out.String(); got != "ok\n> " {
		t.Fatalf("got %q", got)
	}
}

func TestLineEndings(t *testing.T) {
	var out bytes.Buffer
	l := &LineEndings{W: &out}
	if _, err := l.Write([]byte("stats\n")); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "stats\r" {
		t.Fatalf("got %q", got)
	}
}
