//go:build !(pi1bplus || pi2b)

package platform

// No board tag: Selected and SelectedBoard are deliberately left undefined so
// anything that needs a concrete board (the firmware) fails to build.
// Board-independent code and host tests still compile.
