package pl011

import "bootconsole-go/x/mathx"

const (
	// DefaultClock is the UART reference clock the firmware sets up when
	// nothing on the command line says otherwise.
	DefaultClock = 3_000_000
	// DefaultBaud is the console line rate.
	DefaultBaud = 115_200
)

// Divisor is the IBRD/FBRD pair for one clock and line rate:
// clk / (16 * rate) = Integer + Fraction/64.
type Divisor struct {
	Integer  uint16 // IBRD, 16 bits
	Fraction uint8  // FBRD, 6 bits
}

// CalcDivisor computes the divisor with integer arithmetic only. A zero clk
// or rate selects DefaultClock or DefaultBaud.
//
// The clock is scaled by 128 so the quotient is in 1/128ths; the integer
// part is the quotient / 128 and the fraction is the remainder rounded to
// 1/64ths by adding one 1/128th and halving. A fraction that rounds up to
// 64/64 carries into the integer part.
func CalcDivisor(clk, rate uint32) Divisor {
	if clk == 0 {
		clk = DefaultClock
	}
	if rate == 0 {
		rate = DefaultBaud
	}
	v := uint64(clk) * 128 / (16 * uint64(rate))
	i, rem := mathx.DivMod(v, 128)
	f := mathx.RoundDiv(rem, 2)
	if f > fbrdMax {
		i++
		f = 0
	}
	return Divisor{Integer: uint16(i & ibrdMax), Fraction: uint8(f)}
}

// Baud returns the line rate this divisor yields at clk, rounded down.
func (d Divisor) Baud(clk uint32) uint32 {
	if clk == 0 {
		clk = DefaultClock
	}
	div := uint64(d.Integer)*64 + uint64(d.Fraction)
	if div == 0 {
		return 0
	}
	return uint32(uint64(clk) * 4 / div)
}
