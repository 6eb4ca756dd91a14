package kernel

import "errors"

// Sentinel errors for kernel construction. Algorithms must return these
// via errors.Is-compatible wrapping, never panic on caller-supplied values.
var (
	// ErrBadSigma indicates a non-positive bandwidth was supplied to RBFKernel.
	ErrBadSigma = errors.New("kernel: sigma must be > 0")

	// ErrBadScale indicates a non-positive output scale was supplied to RBFKernel.
	ErrBadScale = errors.New("kernel: scale must be > 0")
)
