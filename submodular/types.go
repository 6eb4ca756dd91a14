package submodular

// SubmodularFunction is the contract every objective in this module
// implements: three pure-ish operations over an ordered solution S and a
// candidate item x, plus a deep Clone. pos identifies the slot being
// probed or filled; pos == len(S) means "append", pos < len(S) means
// "replace the item currently at that slot" (spec §4.2).
//
// Side effects are limited to the receiver's own cached state (e.g. a
// Cholesky factor); implementations never mutate S or x, never perform
// I/O, and never touch global state.
type SubmodularFunction interface {
	// Peek returns f(S with slot pos set to x) without changing the
	// represented solution or its cached f; an implementation may still
	// write scratch space or diagnostic counters (FastIVM stages its
	// scratch row and counts degenerate probes). pos must be in
	// [0, len(S)].
	Peek(S [][]float64, x []float64, pos int) float64

	// Update commits the substitution/append described by (x, pos) and
	// returns the new f. If pos == len(S), the represented solution
	// size grows by one; otherwise slot pos is overwritten in place.
	Update(S [][]float64, x []float64, pos int) float64

	// F evaluates f(S) from scratch, ignoring any cached state. Used
	// for correctness checks and for initializing a clone from a
	// solution assembled by another algorithm.
	F(S [][]float64) float64

	// Clone returns a deep copy of the receiver, including any cached
	// factorization and the owned kernel. Mutating the clone must never
	// affect the original (spec §8 invariant 5).
	Clone() SubmodularFunction
}

// degenEps is the numerical floor below which a candidate extension is
// treated as degenerate (kernel not PSD on the augmented set, or x
// numerically identical to an existing element) per spec §4.3 Numerics.
const degenEps = 1e-12
