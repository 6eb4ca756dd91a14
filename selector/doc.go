// Package selector implements the streaming/greedy family of algorithms
// that consume a stream of feature vectors and drive a
// submodular.SubmodularFunction objective toward an approximately
// maximal summary under a cardinality constraint |S| <= K.
//
// All selectors share one contract (Selector): consume items one at a
// time via Next, or a finite slice via Fit; read back the current
// solution and its f-value at any point; report how many candidate
// solutions and how many total stored elements the selector is
// currently holding (for memory accounting across sieve-family
// algorithms, which keep several candidates alive in parallel).
//
// Implementations, roughly in order of memory footprint:
//
//   - Greedy — batch algorithm; exact (1-1/e)-approximation, one
//     candidate solution, but must see the whole input before committing
//     (offline; see the "fit(X,K)" open question in DESIGN.md).
//   - Random — reservoir sampling of size K, one candidate, bit-
//     identical across runs for a fixed seed.
//   - IndependentSetImprovement — one candidate, replaces the weakest
//     slot when a new item's marginal gain there more than doubles it.
//   - SieveStreaming / SieveStreaming++ — O(log(K)/eps) parallel
//     candidates ("sieves"), each chasing a different guess at OPT;
//     SieveStreaming++ tightens the guess range using the best live
//     sieve's own fval instead of a static singleton bound.
//   - Salsa — routes each item to one of three acceptance rules
//     (high-value / dense-regime / low-regime) over the same sieve grid.
//   - ThreeSieves — a single threshold with a decay-on-rejection rule;
//     the cheapest sieve variant, O(K) memory beyond the objective.
//
// None of these run any internal concurrency: spec §5 mandates a single
// selector be driven from one goroutine; running many selectors in
// parallel (one per dataset/hyperparameter combination) is the caller's
// concern, not this package's.
package selector
