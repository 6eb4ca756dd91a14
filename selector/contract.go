package selector

import "fmt"

// Item is a single fixed-dimension feature vector. It is a plain type
// alias for []float64, not a distinct type, so it interoperates
// directly with submodular.SubmodularFunction's []float64/[][]float64
// signatures without conversions.
type Item = []float64

// Selector is the contract every streaming/greedy algorithm in this
// package implements (spec §4.11).
type Selector interface {
	// Next consumes a single item. It may or may not mutate the current
	// solution; internally it may trigger multiple Peek probes before
	// deciding. Returns ErrDimensionMismatch if len(x) disagrees with
	// the dimension established by the first item seen.
	Next(x Item) error

	// Fit consumes a finite batch by iterating Next over it (Greedy
	// instead runs its offline batch algorithm directly — spec §4.4,
	// §4.11). The constructor's K is never overridden by Fit; see
	// DESIGN.md's Open Question decision.
	Fit(batch []Item) error

	// Solution returns the current ordered solution. Order is
	// insertion order for append-only selectors (Greedy), slot order
	// for replacement-style selectors.
	Solution() []Item

	// FVal returns the cached f(S) for the current solution.
	FVal() float64

	// NumCandidateSolutions reports how many independent candidate
	// solutions (and therefore SubmodularFunction clones) this selector
	// is currently holding.
	NumCandidateSolutions() int

	// NumElementsStored reports the total number of items held across
	// all candidate solutions.
	NumElementsStored() int
}

// dimTracker establishes and checks the fixed feature dimension d across
// a stream of items, per spec §3 ("Dimensions across items must match;
// mismatched d is a fatal configuration error").
type dimTracker struct {
	dim int // 0 means "not yet established"
}

// check records dim on the first call and validates it on every
// subsequent call.
func (t *dimTracker) check(x []float64) error {
	if t.dim == 0 {
		t.dim = len(x)

		return nil
	}
	if len(x) != t.dim {
		return fmt.Errorf("expected dimension %d, got %d: %w", t.dim, len(x), ErrDimensionMismatch)
	}

	return nil
}

// validateK returns ErrBadK if k <= 0.
func validateK(k int) error {
	if k <= 0 {
		return fmt.Errorf("k=%d: %w", k, ErrBadK)
	}

	return nil
}

// validateEpsilon returns ErrBadEpsilon if eps is not in (0,1).
func validateEpsilon(eps float64) error {
	if eps <= 0 || eps >= 1 {
		return fmt.Errorf("epsilon=%g: %w", eps, ErrBadEpsilon)
	}

	return nil
}

// validateM returns ErrBadM if m <= 0.
func validateM(m float64) error {
	if m <= 0 {
		return fmt.Errorf("m=%g: %w", m, ErrBadM)
	}

	return nil
}
