package preprocessing

import "math"

// gainTolerance keeps the earlier (leftmost) candidate when two gains differ
// only by floating-point rounding.
const gainTolerance = 1e-12

// interval is a contiguous range [lo, hi) of a sortedView with its label-count
// table. counts always sums to hi-lo.
type interval struct {
	lo, hi int
	depth  int
	counts []int
}

// partitioner runs the recursive entropy-minimisation search over one feature.
// Recursion is driven by an explicit worklist, so already-sorted inputs of any
// length do not grow the goroutine stack.
type partitioner struct {
	view            *sortedView
	minIntervalSize int
	minDepth        int
	criterion       Criterion
	placement       CutPlacement

	// scratch buffers reused across intervals
	prob  []float64
	left  []int
	right []int
}

func newPartitioner(view *sortedView, cfg partitionConfig) *partitioner {
	return &partitioner{
		view:            view,
		minIntervalSize: cfg.minIntervalSize,
		minDepth:        cfg.minDepth,
		criterion:       cfg.criterion,
		placement:       cfg.placement,
		prob:            make([]float64, view.nClasses),
		left:            make([]int, view.nClasses),
		right:           make([]int, view.nClasses),
	}
}

// partitionConfig is the subset of discretizer parameters the search needs.
type partitionConfig struct {
	minIntervalSize int
	minDepth        int
	criterion       Criterion
	placement       CutPlacement
}

// run evaluates the worklist depth-first, left before right, and returns the
// accepted thresholds in the order they were emitted.
func (p *partitioner) run() []float64 {
	n := p.view.len()
	if n == 0 {
		return nil
	}

	stack := []interval{{lo: 0, hi: n, counts: p.view.countLabels(0, n)}}
	var cuts []float64
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		best, ok := p.bestSplit(s)
		if !ok {
			continue
		}
		forced := s.depth < p.minDepth && best.gain > 0
		if !forced && !p.criterion.accepts(best) {
			// A rejected interval is terminal; nothing below it is examined.
			continue
		}

		cuts = append(cuts, p.threshold(best.pos))
		stack = append(stack,
			interval{lo: best.pos + 1, hi: s.hi, depth: s.depth + 1, counts: best.right},
			interval{lo: s.lo, hi: best.pos + 1, depth: s.depth + 1, counts: best.left},
		)
	}
	return cuts
}

// bestSplit scans the admissible candidates of s once, maintaining the left
// label counts incrementally, and returns the candidate with maximal gain.
// Ties go to the leftmost candidate, which has the smallest threshold.
func (p *partitioner) bestSplit(s interval) (*split, bool) {
	n := s.hi - s.lo
	if n < 2 || n < p.minIntervalSize || distinct(s.counts) < 2 {
		return nil, false
	}

	h := entropy(s.counts, n, p.prob)
	clear(p.left)

	var best *split
	candidates := 0
	next := s.lo
	for i := range p.view.candidates(s.lo, s.hi) {
		for ; next <= i; next++ {
			p.left[p.view.labels[next]]++
		}
		for c := range p.right {
			p.right[c] = s.counts[c] - p.left[c]
		}
		candidates++

		n1 := i - s.lo + 1
		n2 := n - n1
		h1 := entropy(p.left, n1, p.prob)
		h2 := entropy(p.right, n2, p.prob)
		gain := h - float64(n1)/float64(n)*h1 - float64(n2)/float64(n)*h2

		if best != nil && gain <= best.gain+gainTolerance {
			continue
		}
		if best == nil {
			best = &split{
				left:  make([]int, len(p.left)),
				right: make([]int, len(p.right)),
			}
		}
		best.pos, best.n1, best.n2 = i, n1, n2
		best.h1, best.h2, best.gain = h1, h2, gain
		copy(best.left, p.left)
		copy(best.right, p.right)
	}
	if best == nil {
		return nil, false
	}

	best.n = n
	best.parent = s.counts
	best.h = h
	best.candidates = candidates
	return best, true
}

// threshold returns the cut value for a split after sorted position pos. The
// cut is always >= the left value and < the right value, so Bin sends the two
// sides of the split to different bins.
func (p *partitioner) threshold(pos int) float64 {
	lo := p.view.values[pos]
	if p.placement != Midpoint {
		return lo
	}
	return midpoint(lo, p.view.values[pos+1])
}

// midpoint returns a value in [lo, hi) halfway between lo < hi. It falls back
// to lo when the two are adjacent floats and the halfway point rounds up to hi.
func midpoint(lo, hi float64) float64 {
	mid := lo + (hi-lo)/2
	if math.IsInf(hi-lo, 0) {
		mid = lo/2 + hi/2
	}
	if mid >= hi {
		return lo
	}
	return mid
}
