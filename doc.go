// Package randwalk is a compact toolkit for Monte-Carlo random-walk
// simulation and cross-sectional position histograms.
//
// 🚀 What is randwalk?
//
//	A small, deterministic-by-injection library that brings together:
//		• Step generation: matrices of independent ±1 Bernoulli draws
//		• Path accumulation: prefix sums turning steps into trajectories
//		• Histogram binning: fixed-edge counts of walker positions per step
//		• A simulation driver composing the three into one call
//
// ✨ Why choose randwalk?
//
//   - Explicit entropy – pass your own rand.Source for reproducible runs
//   - Memory modes – materialize full path matrices or stream one row
//   - Pure Go – no cgo; numeric kernels built on gonum
//   - Tested properties – prefix-sum, fairness and binning invariants
//
// Under the hood, everything is organized under two subpackages:
//
//	walk/      — step generator, path accumulator and the Simulate driver
//	histogram/ — fixed-edge binning with an explicit out-of-range drop policy
//
// Quick ASCII example:
//
//	 step:  +1 −1 +1 +1        path:  +1  0 +1 +2
//	        −1 −1 +1 −1               0 −1 +2 +1
//
//	each path row is binned into unit-width intervals per time step.
//
// Dive into walk/example_test.go and examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/randwalk/walk
package randwalk
