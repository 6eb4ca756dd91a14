package submodular

import "errors"

// Sentinel errors for submodular function construction and use. Callers
// should branch with errors.Is; no algorithm here panics on caller-
// supplied values (configuration errors are returned, not thrown).
var (
	// ErrBadCapacity indicates K <= 0 was passed to a constructor.
	ErrBadCapacity = errors.New("submodular: K must be > 0")

	// ErrBadSigma indicates sigma <= 0 was passed to a constructor.
	ErrBadSigma = errors.New("submodular: sigma must be > 0")

	// ErrNilKernel indicates a nil kernel.Kernel was passed to a constructor.
	ErrNilKernel = errors.New("submodular: kernel must not be nil")
)
