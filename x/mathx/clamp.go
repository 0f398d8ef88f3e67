package mathx

import "golang.org/x/exp/constraints"

// AtLeast returns v, raised to floor if it is below it.
func AtLeast[T constraints.Ordered](v, floor T) T {
	if v < floor {
		return floor
	}
	return v
}
