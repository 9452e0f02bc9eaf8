// Package histogram bins numeric samples into fixed, ascending,
// half-open intervals and reports per-bin counts.
//
// 🚀 What is histogram?
//
//	A deliberately small binning kernel: given ascending edges
//	e[0] < e[1] < … < e[B], a value v lands in bin k iff
//	e[k] ≤ v < e[k+1]. Values outside [e[0], e[B]) are silently
//	dropped — they are counted in no bin. This drop policy is part
//	of the contract: the sum of a count vector is ≤ len(values),
//	with equality exactly when every value lies in the binned range.
//
// ✨ Key features:
//   - UnitEdges: integer edges with unit-width bins in one call
//   - Count / CountInto: allocate-or-reuse count vectors
//   - ValidateEdges: fail fast on short, unsorted or non-finite edges
//   - O(N·log B) binning via binary search; zero allocations with CountInto
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/randwalk/histogram"
//
//	edges := histogram.UnitEdges(-30, 30) // 60 edges → 59 unit bins
//	counts, err := histogram.Count(positions, edges)
//
// Counts are float64 for interoperability with gonum's stat helpers.
//
// See examples in example_test.go.
package histogram
