package selector

import "errors"

// Sentinel errors for selector construction and streaming. Construction
// errors are ConfigurationError per spec §7; Next/Fit surface
// ErrDimensionMismatch the first time an item's length disagrees with
// the dimension established by the first item the selector has seen.
var (
	// ErrBadK indicates K <= 0 was passed to a constructor.
	ErrBadK = errors.New("selector: K must be > 0")

	// ErrBadEpsilon indicates epsilon was not in the open interval (0,1).
	ErrBadEpsilon = errors.New("selector: epsilon must be in (0,1)")

	// ErrBadT indicates T < 1 was passed to ThreeSieves.
	ErrBadT = errors.New("selector: T must be >= 1")

	// ErrBadM indicates a non-positive initial singleton-value bound was
	// supplied to a sieve-family constructor.
	ErrBadM = errors.New("selector: m must be > 0")

	// ErrNilSubmodularFunction indicates a nil SubmodularFunction was
	// passed to a constructor.
	ErrNilSubmodularFunction = errors.New("selector: submodular function must not be nil")

	// ErrDimensionMismatch indicates an item's length disagreed with the
	// dimension established by the first item the selector observed.
	ErrDimensionMismatch = errors.New("selector: dimension mismatch")

	// ErrUnknownStrategy indicates an invalid ThreeSievesStrategy value.
	ErrUnknownStrategy = errors.New("selector: unknown ThreeSieves strategy")
)
