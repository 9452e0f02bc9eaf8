package walk

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/randwalk/histogram"
)

// Steps returns an (iterations × n) matrix of independent fair-coin ±1
// draws, 2·Bernoulli(0.5)−1. src is the entropy source to consume; nil
// selects the process-wide generator.
//
// A negative dimension yields ErrBadShape before any entropy is consumed.
// A zero dimension is legal and yields an empty (but valid) matrix.
//
// Complexity: O(iterations·n) time and memory.
func Steps(iterations, n int, src rand.Source) ([][]float64, error) {
	if iterations < 0 || n < 0 {
		return nil, ErrBadShape
	}

	return stepMatrix(iterations, n, distuv.Bernoulli{P: DefaultUpProbability, Src: src}), nil
}

// Accumulate returns the prefix sum of steps along the time axis: row t of
// the result is the element-wise sum of step rows 0..t, computed per
// column in row order. The input is never mutated.
//
// An empty input yields an empty result; rows of differing lengths yield
// ErrRagged.
//
// Complexity: O(T·N) time and memory.
func Accumulate(steps [][]float64) ([][]float64, error) {
	paths := make([][]float64, len(steps))
	width := 0
	for t, row := range steps {
		if t == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, ErrRagged
		}
		dst := make([]float64, len(row))
		copy(dst, row)
		if t > 0 {
			// path(t) = step(t) + path(t-1); accumulation must stay in row order.
			floats.Add(dst, paths[t-1])
		}
		paths[t] = dst
	}

	return paths, nil
}

// Simulate runs the full pipeline: draw an (iterations × n) step matrix,
// accumulate it into walker trajectories, and bin each trajectory row into
// opts.Edges. Returns (hist, paths, error).
//
// hist has shape (iterations × len(Edges)-1), row t being the position
// histogram of all n walkers after step t. Positions outside the binned
// range are dropped by the binner, so a hist row may sum to less than n.
// paths is non-nil only when opts.ReturnPaths is set.
//
// A nil opts means DefaultOptions. iterations=0 yields an empty hist of
// zero rows; n=0 yields all-zero hist rows.
//
// Errors:
//   - ErrBadShape           — negative iterations or n (no entropy consumed).
//   - ErrInvalidProbability — UpProbability outside [0,1].
//   - histogram.ErrBadEdges — malformed Edges.
//   - ErrPathsNeedMatrix    — ReturnPaths with MemoryMode=OneRow.
//
// Example:
//
//	opts := walk.DefaultOptions()
//	opts.Src = rand.NewPCG(1, 2)
//	hist, _, err := walk.Simulate(1000, 5000, &opts)
func Simulate(iterations, n int, opts *Options) (hist, paths [][]float64, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Validate everything up front; no entropy is consumed on failure.
	if iterations < 0 || n < 0 {
		return nil, nil, ErrBadShape
	}
	if math.IsNaN(o.UpProbability) || o.UpProbability < 0 || o.UpProbability > 1 {
		return nil, nil, ErrInvalidProbability
	}
	if err = histogram.ValidateEdges(o.Edges); err != nil {
		return nil, nil, err
	}
	if o.ReturnPaths && o.MemoryMode != FullMatrix {
		return nil, nil, ErrPathsNeedMatrix
	}

	bern := distuv.Bernoulli{P: o.UpProbability, Src: o.Src}
	if o.MemoryMode == OneRow {
		hist, err = streamHistogram(iterations, n, bern, o.Edges)

		return hist, nil, err
	}

	steps := stepMatrix(iterations, n, bern)
	if paths, err = Accumulate(steps); err != nil {
		return nil, nil, err
	}

	bins := len(o.Edges) - 1
	hist = make([][]float64, iterations)
	for t, row := range paths {
		counts := make([]float64, bins)
		if err = histogram.CountInto(counts, row, o.Edges); err != nil {
			return nil, nil, err
		}
		hist[t] = counts
	}

	if !o.ReturnPaths {
		paths = nil
	}

	return hist, paths, nil
}

// stepMatrix fills an (iterations × n) matrix with 2·Bernoulli−1 draws in
// row-major order. The fixed draw order keeps FullMatrix and OneRow modes
// bit-identical for the same Source.
func stepMatrix(iterations, n int, bern distuv.Bernoulli) [][]float64 {
	steps := make([][]float64, iterations)
	for t := range steps {
		row := make([]float64, n)
		for j := range row {
			// Map {0,1} draws onto {-1,+1}.
			row[j] = 2*bern.Rand() - 1
		}
		steps[t] = row
	}

	return steps
}

// streamHistogram advances a single position row step by step, binning it
// after every advance. Memory: O(n + iterations·bins).
func streamHistogram(iterations, n int, bern distuv.Bernoulli, edges []float64) ([][]float64, error) {
	bins := len(edges) - 1
	hist := make([][]float64, iterations)
	pos := make([]float64, n)
	for t := 0; t < iterations; t++ {
		for j := range pos {
			pos[j] += 2*bern.Rand() - 1
		}
		counts := make([]float64, bins)
		if err := histogram.CountInto(counts, pos, edges); err != nil {
			return nil, err
		}
		hist[t] = counts
	}

	return hist, nil
}
