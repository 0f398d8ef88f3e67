//go:build tinygo

package strconvx

// Minimal, allocation-aware subset of strconv for firmware builds.
// Supported bases: 2..36, plus 0 for prefix detection (0x, 0o, 0b).

type parseError struct{ msg string }

func (e parseError) Error() string { return e.msg }

var (
	errSyntax = parseError{"invalid syntax"}
	errRange  = parseError{"value out of range"}
)

// ParseUint rejects values that do not fit bitSize (0 means 64).
func ParseUint(s string, base, bitSize int) (uint64, error) {
	if base == 0 {
		base = detectBase(&s)
	}
	if base < 2 || base > 36 || len(s) == 0 {
		return 0, errSyntax
	}
	if bitSize <= 0 || bitSize > 64 {
		bitSize = 64
	}
	limit := ^uint64(0) >> uint(64-bitSize)
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'z':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'Z':
			d = c - 'A' + 10
		default:
			return 0, errSyntax
		}
		if int(d) >= base {
			return 0, errSyntax
		}
		if v > (limit-uint64(d))/uint64(base) {
			return limit, errRange
		}
		v = v*uint64(base) + uint64(d)
	}
	return v, nil
}

func detectBase(ps *string) int {
	s := *ps
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			*ps = s[2:]
			return 16
		case 'b', 'B':
			*ps = s[2:]
			return 2
		case 'o', 'O':
			*ps = s[2:]
			return 8
		}
	}
	return 10
}
