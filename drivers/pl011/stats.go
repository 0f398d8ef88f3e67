package pl011

import "bootconsole-go/x/conv"

// Stats counts traffic and receive errors since power-up. Counters only
// grow and wrap silently at 2^32.
type Stats struct {
	RxBytes       uint32
	TxBytes       uint32
	OverrunErrors uint32
	BreakErrors   uint32
	ParityErrors  uint32
	FramingErrors uint32
}

func (s *Stats) record(dr uint32) {
	s.RxBytes++
	if dr&drFE != 0 {
		s.FramingErrors++
	}
	if dr&drPE != 0 {
		s.ParityErrors++
	}
	if dr&drBE != 0 {
		s.BreakErrors++
	}
	if dr&drOE != 0 {
		s.OverrunErrors++
	}
}

// Errors is the total of all error counters.
func (s Stats) Errors() uint32 {
	return s.OverrunErrors + s.BreakErrors + s.ParityErrors + s.FramingErrors
}

// AppendTo renders the counters as "rx=N tx=N oe=N be=N pe=N fe=N".
func (s Stats) AppendTo(dst []byte) []byte {
	fields := [...]struct {
		key string
		v   uint32
	}{
		{"rx=", s.RxBytes},
		{"tx=", s.TxBytes},
		{"oe=", s.OverrunErrors},
		{"be=", s.BreakErrors},
		{"pe=", s.ParityErrors},
		{"fe=", s.FramingErrors},
	}
	for i, f := range fields {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = append(dst, f.key...)
		dst = conv.AppendUint(dst, uint64(f.v))
	}
	return dst
}

func (s Stats) String() string { return string(s.AppendTo(nil)) }
