// Package submodular implements the Informative Vector Machine (IVM)
// log-determinant objective used to score a summary of feature vectors:
//
//	f(S) = (1/2) * log det(I + sigma^-2 * K(S))
//
// where K(S)[i][j] = kernel.K(S[i], S[j]) is the Gram matrix of the
// kernel over S. f is non-negative, monotone, and submodular in S,
// which is what makes the greedy/streaming selectors in package
// selector effective: they chase the marginal gain
//
//	delta(x | S) = f(S u {x}) - f(S)
//
// without needing to re-evaluate the whole set on every probe.
//
// Three implementations are provided:
//
//   - IVM — recomputes the full Cholesky factorization from scratch on
//     every Peek/Update/F call. O(n^3) per probe. Useful as a reference
//     for correctness checks and for small n where the bookkeeping of
//     FastIVM isn't worth it.
//   - FastIVM — maintains an incremental lower-triangular Cholesky
//     factor. Append-style Peek/Update (the common case, pos == len(S))
//     run in O(n^2); replacing an existing slot (pos < len(S)) still
//     requires an O(n^3) rebuild of the live submatrix, since changing
//     an interior row invalidates everything below it.
//   - NaiveLogdet — caches only the current solution slice and its
//     fval, recomputing both from scratch on every Update; no factor is
//     kept between calls. A minimal illustration of how a caller can
//     plug a wholly independent SubmodularFunction into the selector
//     family without adopting FastIVM's incremental bookkeeping.
//
// All three satisfy SubmodularFunction, so selector package code is
// written once against the interface and works with any of them.
package submodular
