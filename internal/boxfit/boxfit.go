// Package boxfit implements the box-fitting and scoring engine.
//
// Given a box catalog and an item's dimensions, the engine evaluates five
// independent packing strategies for every box and packing level, producing
// candidate results with a feasibility tier, a tightness score (sum of
// squared per-axis clearances, lower is tighter), and a price. The engine is
// a pure computation library: no I/O, no locking, no suspension points.
package boxfit

import (
	"sort"
	"strconv"
)

// Dims is an ordered triple of dimensions in inches.
// Internally the engine always works with descending-sorted dims.
type Dims [3]float64

// SortedDims returns the three values as descending-sorted Dims.
// Input order does not matter; callers may pass length/width/height
// in any order.
func SortedDims(a, b, c float64) Dims {
	d := Dims{a, b, c}
	sort.Sort(sort.Reverse(byValue(d[:])))
	return d
}

// Sorted returns a descending-sorted copy of d.
func (d Dims) Sorted() Dims {
	return SortedDims(d[0], d[1], d[2])
}

// String renders the dims as "12 x 9 x 4" without trailing zeros.
func (d Dims) String() string {
	return fmtDim(d[0]) + " x " + fmtDim(d[1]) + " x " + fmtDim(d[2])
}

// MarshalJSON renders the dims in their display form.
func (d Dims) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// Min returns the smallest of the three values.
func (d Dims) Min() float64 {
	m := d[0]
	if d[1] < m {
		m = d[1]
	}
	if d[2] < m {
		m = d[2]
	}
	return m
}

type byValue []float64

func (s byValue) Len() int           { return len(s) }
func (s byValue) Less(i, j int) bool { return s[i] < s[j] }
func (s byValue) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// sumSquares returns the sum of squares of the three clearances.
// This is the score invariant shared by every strategy.
func sumSquares(d Dims) float64 {
	return d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
}
