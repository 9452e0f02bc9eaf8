package histogram

import (
	"math"
	"sort"
)

// minEdgeCount is the smallest usable edge sequence: two edges, one bin.
const minEdgeCount = 2

// UnitEdges returns ascending integer edges lo, lo+1, …, hi-1 as float64,
// defining hi-lo-1 unit-width half-open bins [lo,lo+1), …, [hi-2,hi-1).
//
// The span must satisfy hi-lo ≥ 2; otherwise UnitEdges returns nil, which
// ValidateEdges (and every consumer of edges) rejects with ErrBadEdges.
//
// Complexity: O(hi-lo) time and memory.
func UnitEdges(lo, hi int) []float64 {
	if hi-lo < minEdgeCount {
		return nil
	}
	edges := make([]float64, hi-lo)
	for i := range edges {
		edges[i] = float64(lo + i)
	}

	return edges
}

// ValidateEdges reports whether edges form a usable bin boundary sequence:
// at least two values, strictly ascending, all finite.
// Returns ErrBadEdges on any violation; nil otherwise.
//
// Complexity: O(B) time, O(1) memory.
func ValidateEdges(edges []float64) error {
	if len(edges) < minEdgeCount {
		return ErrBadEdges
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return ErrBadEdges
		}
		// Strict ascent; equal neighbors would define an empty bin.
		if i > 0 && e <= edges[i-1] {
			return ErrBadEdges
		}
	}

	return nil
}

// Count bins values into len(edges)-1 half-open intervals and returns the
// freshly allocated count vector. Values outside [edges[0], edges[B])
// are silently dropped. See CountInto for the in-place variant.
//
// Complexity: O(N·log B) time, O(B) memory.
func Count(values, edges []float64) ([]float64, error) {
	if err := ValidateEdges(edges); err != nil {
		return nil, err
	}
	dst := make([]float64, len(edges)-1)
	if err := CountInto(dst, values, edges); err != nil {
		return nil, err
	}

	return dst, nil
}

// CountInto bins values into dst, where dst[k] receives the number of
// values v with edges[k] ≤ v < edges[k+1]. dst is zeroed first, so counts
// never accumulate across calls. Values below edges[0], at or above the
// last edge, or NaN are dropped without error; as a consequence the sum
// over dst is ≤ len(values), with equality iff every value is in range.
//
// Errors:
//   - ErrBadEdges  — edges fail ValidateEdges.
//   - ErrBadLength — len(dst) != len(edges)-1.
//
// Complexity: O(N·log B) time, O(1) extra memory.
func CountInto(dst, values, edges []float64) error {
	if err := ValidateEdges(edges); err != nil {
		return err
	}
	if len(dst) != len(edges)-1 {
		return ErrBadLength
	}
	for k := range dst {
		dst[k] = 0
	}

	bins := len(dst)
	for _, v := range values {
		// Smallest i with edges[i] ≥ v; the containing bin is i when the
		// value sits exactly on an edge, i-1 otherwise.
		i := sort.SearchFloat64s(edges, v)
		k := i - 1
		if i < len(edges) && edges[i] == v {
			k = i
		}
		if k < 0 || k >= bins {
			continue // out-of-range value: dropped, not clamped
		}
		dst[k]++
	}

	return nil
}
