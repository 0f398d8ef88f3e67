package strconvx

import "testing"

func TestParseUint(t *testing.T) {
	for _, c := range []struct {
		s    string
		base int
		want uint64
	}{
		{"48000000", 10, 48000000},
		{"3000000", 0, 3000000},
		{"0x2dc6c00", 0, 48000000},
		{"0b101", 0, 5},
		{"FF", 16, 255},
	} {
		got, err := ParseUint(c.s, c.base, 32)
		if err != nil {
			t.Fatalf("ParseUint(%q,%d) error: %v", c.s, c.base, err)
		}
		if got != c.want {
			t.Fatalf("ParseUint(%q,%d) = %d, want %d", c.s, c.base, got, c.want)
		}
	}
}

func TestParseUintErrors(t *testing.T) {
	for _, s := range []string{"", "12a", "-1", "4294967296"} {
		if _, err := ParseUint(s, 10, 32); err == nil {
			t.Fatalf("ParseUint(%q,10,32) expected error", s)
		}
	}
}
