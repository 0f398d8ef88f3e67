//go:build pi1bplus && !pi2b

package platform

const SelectedBoard = Pi1BPlus

var Selected = descriptors[Pi1BPlus]
