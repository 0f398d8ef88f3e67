package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns floor((a + b/2)/b), classic rounding for unsigned values.
// b == 0 yields 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// DivMod returns a/b and a%b. b == 0 yields (0, a).
func DivMod[T constraints.Unsigned](a, b T) (q, r T) {
	if b == 0 {
		return 0, a
	}
	return a / b, a % b
}
