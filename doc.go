// Package ssm is a library for streaming and greedy submodular
// maximization under a cardinality constraint.
//
// Three subpackages cover the three concerns:
//
//	kernel/     — similarity kernels (RBF, linear, custom func adapters)
//	submodular/ — the IVM log-determinant objective and its incremental
//	              (FastIVM) maintenance
//	selector/   — the family of algorithms that choose which items enter
//	              the solution: Greedy, Random, IndependentSetImprovement,
//	              SieveStreaming, SieveStreaming++, Salsa, ThreeSieves
//
// A typical program picks a Kernel, wraps it in a submodular.SubmodularFunction
// (FastIVM for anything beyond a handful of items), builds one of the
// selector.Selector implementations over it, and feeds items to Next one
// at a time or in a batch via Fit:
//
//	rbf, _ := kernel.NewRBFKernel(1.0, 1.0)
//	fn, _ := submodular.NewFastIVM(10, rbf, 1.0)
//	sel, _ := selector.NewSieveStreaming(10, fn, 0.1, 0.1)
//	for _, x := range stream {
//		sel.Next(x)
//	}
//	solution := sel.Solution()
package ssm
