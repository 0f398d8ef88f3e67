//go:build pi2b && !pi1bplus

package platform

const SelectedBoard = Pi2B

var Selected = descriptors[Pi2B]
