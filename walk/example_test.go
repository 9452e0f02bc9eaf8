package walk_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/randwalk/walk"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Simulate
////////////////////////////////////////////////////////////////////////////////

// ExampleSimulate runs a short ensemble simulation with a seeded source.
// Scenario:
//
//   - 5 time steps, 100 walkers, default ±30 unit bins
//   - after at most 5 steps every position lies inside the binned range,
//     so each histogram row accounts for all 100 walkers
//
// Complexity: O(iterations·n) draws, O(iterations·n·log bins) binning
func ExampleSimulate() {
	opts := walk.DefaultOptions()
	opts.Src = rand.NewPCG(1, 2)

	hist, _, err := walk.Simulate(5, 100, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sums := make([]float64, len(hist))
	for t, row := range hist {
		for _, c := range row {
			sums[t] += c
		}
	}
	fmt.Printf("rows=%d\nbins=%d\nsums=%v\n", len(hist), len(hist[0]), sums)
	// Output:
	// rows=5
	// bins=59
	// sums=[100 100 100 100 100]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Simulate (OneRow streaming, degenerate coin)
////////////////////////////////////////////////////////////////////////////////

// ExampleSimulate_oneRow streams positions in O(n) memory with a
// degenerate always-up coin, making every count fully predictable:
// after step t both walkers sit at +t.
// Scenario:
//
//   - 3 time steps, 2 walkers, unit bins [0,1) [1,2) [2,3) [3,4)
//   - UpProbability=1 ⇒ positions 1, 2, 3 in consecutive rows
func ExampleSimulate_oneRow() {
	opts := walk.DefaultOptions()
	opts.MemoryMode = walk.OneRow
	opts.UpProbability = 1
	opts.Edges = []float64{0, 1, 2, 3, 4}

	hist, _, err := walk.Simulate(3, 2, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(hist)
	// Output:
	// [[0 2 0 0] [0 0 2 0] [0 0 0 2]]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Accumulate
////////////////////////////////////////////////////////////////////////////////

// ExampleAccumulate shows the prefix-sum contract on a hand-written step
// matrix: row t of the result is the running sum of step rows 0..t.
func ExampleAccumulate() {
	steps := [][]float64{
		{1, -1, 1},
		{1, 1, -1},
		{-1, 1, -1},
	}

	paths, err := walk.Accumulate(steps)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range paths {
		fmt.Println(row)
	}
	// Output:
	// [1 -1 1]
	// [2 0 0]
	// [1 1 -1]
}
