package pl011

import "testing"

func TestCalcDivisorReference(t *testing.T) {
	// 3 MHz / (16 * 115200) = 1.6276; .6276 * 64 = 40.2
	got := CalcDivisor(3_000_000, 115_200)
	if got != (Divisor{Integer: 1, Fraction: 40}) {
		t.Fatalf("CalcDivisor(3MHz) = %+v, want {1 40}", got)
	}
}

func TestCalcDivisorZeroMeansDefault(t *testing.T) {
	if CalcDivisor(0, 0) != CalcDivisor(DefaultClock, DefaultBaud) {
		t.Fatal("zero clock/rate did not select the defaults")
	}
	if CalcDivisor(0, DefaultBaud) != CalcDivisor(3_000_000, 115_200) {
		t.Fatal("zero clock did not select 3 MHz")
	}
}

func TestCalcDivisorKnownClocks(t *testing.T) {
	for _, c := range []struct {
		clk  uint32
		want Divisor
	}{
		{48_000_000, Divisor{26, 3}},    // 26.0417
		{250_000_000, Divisor{135, 41}}, // 135.6337
		{384_000_000, Divisor{208, 21}}, // 208.3333
		{1_843_200, Divisor{1, 0}},      // exact
	} {
		if got := CalcDivisor(c.clk, DefaultBaud); got != c.want {
			t.Fatalf("CalcDivisor(%d) = %+v, want %+v", c.clk, got, c.want)
		}
	}
}

func TestCalcDivisorFieldsInRange(t *testing.T) {
	for clk := uint32(2_000_000); clk <= 384_000_000; clk += 997_331 {
		d := CalcDivisor(clk, DefaultBaud)
		if d.Fraction > fbrdMax {
			t.Fatalf("clk %d: fraction %d exceeds 6 bits", clk, d.Fraction)
		}
		if d.Integer == 0 {
			t.Fatalf("clk %d: zero integer divisor", clk)
		}
	}
}

func TestCalcDivisorCarriesFullFraction(t *testing.T) {
	// 16*rate*(2 - 1/128) puts the remainder at 127/128, which rounds to 64/64.
	clk := uint32(16 * 1000 * 255 / 128)
	got := CalcDivisor(clk, 1000)
	if got != (Divisor{Integer: 2, Fraction: 0}) {
		t.Fatalf("got %+v, want {2 0}", got)
	}
}

func TestDivisorBaud(t *testing.T) {
	d := CalcDivisor(48_000_000, DefaultBaud)
	if b := d.Baud(48_000_000); b < 115_000 || b > 115_400 {
		t.Fatalf("Baud = %d, want ~115200", b)
	}
	if (Divisor{}).Baud(0) != 0 {
		t.Fatal("zero divisor should report 0")
	}
}
