// Package walk simulates ensembles of ±1 random walks and reports, for
// every time step, the histogram of walker positions across the ensemble.
//
// 🚀 What is walk?
//
//	A linear, stateless pipeline in three stages:
//	  1. Steps      — an (iterations × n) matrix of independent ±1 draws,
//	     2·Bernoulli(p)−1 with p = 0.5 by default.
//	  2. Accumulate — a prefix sum along the time axis, turning step rows
//	     into walker trajectories (row t = running sum of rows 0..t).
//	  3. Simulate   — the driver: steps → paths → one fixed-edge histogram
//	     row per time step, stacked into an (iterations × bins) count matrix.
//
// ✨ Key features:
//   - explicit entropy: inject any math/rand/v2 Source for reproducible runs
//   - memory modes: FullMatrix materializes trajectories, OneRow streams a
//     single position row in O(n) memory with identical output per seed
//   - optional trajectory return (ReturnPaths, FullMatrix only)
//   - out-of-range positions are dropped by the binner, never clamped
//
// ⚙️ Usage:
//
//	import (
//	  "math/rand/v2"
//
//	  "github.com/katalvlaran/randwalk/walk"
//	)
//
//	opts := walk.DefaultOptions()
//	opts.Src = rand.NewPCG(1, 2)          // deterministic run
//	hist, _, err := walk.Simulate(500, 1000, &opts)
//
// Concurrency:
//
//	Simulate never spawns goroutines. A non-nil Src must not be shared by
//	concurrent calls; give each goroutine its own independently seeded
//	Source (see concurrency_test.go).
//
// Performance:
//
//   - Time:   O(iterations · n) draws + O(iterations · n · log bins) binning
//   - Memory: O(iterations · (n + bins)) (FullMatrix) or
//     O(n + iterations · bins) (OneRow)
//
// See examples in example_test.go and the runnable demo under examples/.
package walk
