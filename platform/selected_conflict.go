//go:build pi1bplus && pi2b

package platform

// More than one board tag was given. The undefined identifier below stops
// the build with a message naming the problem.
var _ = buildError_MORE_THAN_ONE_BOARD_TAG
