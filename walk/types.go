// Package walk defines options, memory modes, and sentinel errors for
// random-walk simulation.
package walk

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/randwalk/histogram"
)

// Sentinel errors for walk operations.
var (
	// ErrBadShape indicates a negative iterations or walker count.
	// It is returned before any entropy is consumed.
	ErrBadShape = errors.New("walk: iterations and n must be non-negative")

	// ErrRagged indicates a step matrix whose rows differ in length.
	ErrRagged = errors.New("walk: all step rows must have the same length")

	// ErrInvalidProbability indicates an up-step probability outside [0,1].
	ErrInvalidProbability = errors.New("walk: up-step probability out of range")

	// ErrPathsNeedMatrix indicates ReturnPaths=true with a streaming memory
	// mode; trajectories exist only when the path matrix is materialized.
	ErrPathsNeedMatrix = errors.New("walk: ReturnPaths requires MemoryMode=FullMatrix")
)

// MemoryMode controls how Simulate stores walker trajectories.
//
//   - FullMatrix — materialize the step and path matrices before binning.
//     Allows ReturnPaths. Memory: O(iterations·n).
//
//   - OneRow — keep a single position row, advanced and binned in place.
//     Memory: O(n). Output is identical to FullMatrix for the same Source,
//     because draws are consumed in the same row-major order.
type MemoryMode int

const (
	// FullMatrix mode: store all step and path rows, support ReturnPaths.
	FullMatrix MemoryMode = iota

	// OneRow mode: stream one position row, no trajectory recovery.
	OneRow
)

// Defaults for Simulate. The canonical binned range covers positions in
// [-30, 29) with unit-width bins, generous for walks of a few dozen steps
// since a position changes by at most 1 per step.
const (
	// DefaultMinPosition is the lowest binned position (first edge).
	DefaultMinPosition = -30

	// DefaultMaxPosition bounds the binned range; the last edge is
	// DefaultMaxPosition-1, so positions at or above it are dropped.
	DefaultMaxPosition = 30

	// DefaultUpProbability is the fair-coin probability of a +1 step.
	DefaultUpProbability = 0.5
)

// Options configures Simulate.
//
// Fields:
//   - Edges         — ascending histogram bin edges; len(Edges)-1 bins.
//   - UpProbability — P(step = +1); must lie in [0,1].
//   - Src           — entropy source consumed by the step draws. nil means
//     the process-wide generator (convenient, but not reproducible).
//   - MemoryMode    — FullMatrix or OneRow storage.
//   - ReturnPaths   — if true, Simulate also returns the path matrix.
//     Requires MemoryMode=FullMatrix.
//
// Start from DefaultOptions and override selectively:
//
//	opts := walk.DefaultOptions()
//	opts.Src = rand.NewPCG(7, 11)
//	opts.MemoryMode = walk.OneRow
//
//	hist, _, err := walk.Simulate(100, 10_000, &opts)
type Options struct {
	Edges         []float64
	UpProbability float64
	Src           rand.Source
	MemoryMode    MemoryMode
	ReturnPaths   bool
}

// DefaultOptions returns the documented defaults: unit bins over
// [DefaultMinPosition, DefaultMaxPosition), a fair coin, the ambient
// entropy source, FullMatrix storage, and no trajectory return.
func DefaultOptions() Options {
	return Options{
		Edges:         histogram.UnitEdges(DefaultMinPosition, DefaultMaxPosition),
		UpProbability: DefaultUpProbability,
		Src:           nil,
		MemoryMode:    FullMatrix,
		ReturnPaths:   false,
	}
}
