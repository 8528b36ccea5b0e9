package preprocessing

import (
	"iter"
	"sort"
)

// sortedView holds one feature column ordered ascending by value, with the
// class id of every sample aligned to it. It is built once per feature and is
// read-only afterwards.
type sortedView struct {
	values []float64
	labels []int
	// nClasses is the size of the label alphabet of the whole fit.
	nClasses int
}

// newSortedView copies values and labels into a view ordered by value. Equal
// values keep their original relative order, so the view is deterministic.
func newSortedView(values []float64, labels []int, nClasses int) *sortedView {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	v := &sortedView{
		values:   make([]float64, len(values)),
		labels:   make([]int, len(values)),
		nClasses: nClasses,
	}
	for pos, idx := range order {
		v.values[pos] = values[idx]
		v.labels[pos] = labels[idx]
	}
	return v
}

// len returns the number of samples in the view.
func (v *sortedView) len() int {
	return len(v.values)
}

// countLabels builds the label-count table of [lo, hi).
func (v *sortedView) countLabels(lo, hi int) []int {
	counts := make([]int, v.nClasses)
	for _, c := range v.labels[lo:hi] {
		counts[c]++
	}
	return counts
}

// isBoundary reports whether a cut may be placed between positions i and i+1:
// the labels must differ and so must the values. Samples sharing a value are
// never separated, whatever their labels.
func (v *sortedView) isBoundary(i int) bool {
	return v.labels[i] != v.labels[i+1] && v.values[i] != v.values[i+1]
}

// candidates yields every admissible split position i in [lo, hi-1) of the
// interval [lo, hi). The split puts [lo, i] left and [i+1, hi) right. The
// sequence is lazy and may be ranged over any number of times.
func (v *sortedView) candidates(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i < hi-1; i++ {
			if v.isBoundary(i) && !yield(i) {
				return
			}
		}
	}
}
