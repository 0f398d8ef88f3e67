//go:build tinygo && !(pi1bplus || pi2b)

package main

// No board tag was given. The call below names the problem in the build
// error: "undefined: compileError_BOARD_NOT_SPECIFIED".
func init() {
	compileError_BOARD_NOT_SPECIFIED()
}
