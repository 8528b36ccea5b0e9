package preprocessing

import (
	"math"
	"slices"
	"sort"
)

// CutSet is the strictly increasing sequence of accepted thresholds of one
// feature. A value v falls in bin i when exactly i thresholds are below v, so
// a value equal to a threshold belongs to the bin on its left. An empty CutSet
// is a single bin covering the whole range.
type CutSet []float64

// Interval is the half-open value range (Lo, Hi] covered by one bin. The first
// bin has Lo = -Inf and the last has Hi = +Inf.
type Interval struct {
	Lo float64
	Hi float64
}

// newCutSet orders and deduplicates the thresholds collected for a feature.
// Thresholds arrive in depth-first emission order.
func newCutSet(cuts []float64) CutSet {
	out := slices.Clone(cuts)
	slices.Sort(out)
	return CutSet(slices.Compact(out))
}

// Bin returns the bin index of v in [0, len(c)]. Values below the first
// threshold map to 0 and values above the last map to len(c).
func (c CutSet) Bin(v float64) int {
	return sort.SearchFloat64s(c, v)
}

// NBins returns the number of bins the cut set induces.
func (c CutSet) NBins() int {
	return len(c) + 1
}

// Intervals returns the value range of every bin.
func (c CutSet) Intervals() []Interval {
	out := make([]Interval, 0, c.NBins())
	lo := math.Inf(-1)
	for _, cut := range c {
		out = append(out, Interval{Lo: lo, Hi: cut})
		lo = cut
	}
	return append(out, Interval{Lo: lo, Hi: math.Inf(1)})
}

// Contains reports whether v lies in (Lo, Hi]. The first bin also holds -Inf.
func (iv Interval) Contains(v float64) bool {
	return (v > iv.Lo || math.IsInf(iv.Lo, -1)) && v <= iv.Hi
}
