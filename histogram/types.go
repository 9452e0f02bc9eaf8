// Package histogram defines sentinel errors for fixed-edge binning.
package histogram

import "errors"

// Sentinel errors for histogram operations.
var (
	// ErrBadEdges indicates the edge sequence is too short, not strictly
	// ascending, or contains NaN/±Inf values.
	ErrBadEdges = errors.New("histogram: edges must be at least two strictly ascending finite values")

	// ErrBadLength indicates a destination count vector whose length does
	// not equal the number of bins, len(edges)-1.
	ErrBadLength = errors.New("histogram: dst length must equal len(edges)-1")
)
