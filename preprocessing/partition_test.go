package preprocessing

import (
	"math"
	"slices"
	"testing"
)

func runPartitioner(values []float64, labels []int, nClasses int, cfg partitionConfig) CutSet {
	if cfg.minIntervalSize == 0 {
		cfg.minIntervalSize = 2
	}
	view := newSortedView(values, labels, nClasses)
	return newCutSet(newPartitioner(view, cfg).run())
}

func TestPartitioner(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		labels   []int
		nClasses int
		cfg      partitionConfig
		want     []float64
	}{
		{
			name:     "two pure halves",
			values:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
			labels:   []int{0, 0, 0, 0, 1, 1, 1, 1},
			nClasses: 2,
			want:     []float64{4},
		},
		{
			name:     "alternating labels rejected by MDL",
			values:   []float64{1, 2, 3, 4},
			labels:   []int{0, 1, 0, 1},
			nClasses: 2,
			want:     nil,
		},
		{
			name:     "three classes",
			values:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
			labels:   []int{0, 0, 0, 1, 1, 1, 2, 2, 2},
			nClasses: 3,
			want:     []float64{3, 6},
		},
		{
			name:     "unsorted input",
			values:   []float64{8, 1, 7, 2, 6, 3, 5, 4},
			labels:   []int{1, 0, 1, 0, 1, 0, 1, 0},
			nClasses: 2,
			want:     []float64{4},
		},
		{
			name:     "pure labels",
			values:   []float64{1, 2, 3, 4},
			labels:   []int{1, 1, 1, 1},
			nClasses: 2,
			want:     nil,
		},
		{
			name:     "label changes only inside ties",
			values:   []float64{1, 1, 1, 1, 2, 2, 2, 2},
			labels:   []int{0, 0, 1, 1, 1, 1, 0, 0},
			nClasses: 2,
			want:     nil,
		},
		{
			name:     "min depth forces the first split",
			values:   []float64{1, 2, 3, 4},
			labels:   []int{0, 1, 0, 1},
			nClasses: 2,
			cfg:      partitionConfig{minDepth: 1},
			want:     []float64{1},
		},
		{
			name:     "min depth two",
			values:   []float64{1, 2, 3, 4},
			labels:   []int{0, 1, 0, 1},
			nClasses: 2,
			cfg:      partitionConfig{minDepth: 2},
			want:     []float64{1, 2, 3},
		},
		{
			name:     "min interval size blocks the root",
			values:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
			labels:   []int{0, 0, 0, 0, 1, 1, 1, 1},
			nClasses: 2,
			cfg:      partitionConfig{minIntervalSize: 9},
			want:     nil,
		},
		{
			name:     "midpoint placement",
			values:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
			labels:   []int{0, 0, 0, 0, 1, 1, 1, 1},
			nClasses: 2,
			cfg:      partitionConfig{placement: Midpoint},
			want:     []float64{4.5},
		},
		{
			name:     "kononenko",
			values:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
			labels:   []int{0, 0, 0, 0, 1, 1, 1, 1},
			nClasses: 2,
			cfg:      partitionConfig{criterion: Kononenko},
			want:     []float64{4},
		},
		{
			name:     "empty",
			nClasses: 2,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runPartitioner(tt.values, tt.labels, tt.nClasses, tt.cfg)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal([]float64(got), tt.want) {
				t.Errorf("cuts = %v, want %v", got, tt.want)
			}
		})
	}
}

// A long, already sorted column with ten alternating pure blocks exercises the
// worklist on deep inputs.
func TestPartitioner_SortedBlocks(t *testing.T) {
	const n, block = 10000, 1000
	values := make([]float64, n)
	labels := make([]int, n)
	for i := range values {
		values[i] = float64(i)
		labels[i] = (i / block) % 2
	}

	got := runPartitioner(values, labels, 2, partitionConfig{})

	var want []float64
	for b := 1; b < n/block; b++ {
		want = append(want, float64(b*block-1))
	}
	if !slices.Equal([]float64(got), want) {
		t.Errorf("cuts = %v, want %v", got, want)
	}
}

func TestBestSplit_LeftmostTieBreak(t *testing.T) {
	// splits after 1 and after 3 have the same gain
	s := bestSplitOf(t, []float64{1, 2, 3, 4}, []int{0, 1, 0, 1}, 2)
	if s.pos != 0 {
		t.Errorf("best position = %d, want 0", s.pos)
	}
	if s.candidates != 3 {
		t.Errorf("candidates = %d, want 3", s.candidates)
	}
	if !slices.Equal(s.left, []int{1, 0}) || !slices.Equal(s.right, []int{1, 2}) {
		t.Errorf("child tables = %v / %v", s.left, s.right)
	}
	if s.n1+s.n2 != s.n {
		t.Errorf("child sizes %d + %d != %d", s.n1, s.n2, s.n)
	}
}

func TestBestSplit_ChildCountsSumToSize(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	labels := []int{0, 2, 0, 1, 1, 2, 2, 0, 1}
	s := bestSplitOf(t, values, labels, 3)

	sum := func(c []int) int {
		total := 0
		for _, n := range c {
			total += n
		}
		return total
	}
	if sum(s.left) != s.n1 || sum(s.right) != s.n2 {
		t.Errorf("tables %v/%v do not match sizes %d/%d", s.left, s.right, s.n1, s.n2)
	}
	for c := range s.parent {
		if s.left[c]+s.right[c] != s.parent[c] {
			t.Errorf("class %d: %d + %d != %d", c, s.left[c], s.right[c], s.parent[c])
		}
	}
}

func TestMidpoint(t *testing.T) {
	const (
		a = 1.0000000000000002
		b = 1.0000000000000004
	)
	tests := []struct {
		name   string
		lo, hi float64
		want   float64
	}{
		{name: "ordinary", lo: 4, hi: 5, want: 4.5},
		{name: "adjacent floats", lo: a, hi: b, want: a},
		{name: "overflowing width", lo: -math.MaxFloat64, hi: math.MaxFloat64, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := midpoint(tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("midpoint(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			}
			if got < tt.lo || got >= tt.hi {
				t.Errorf("midpoint(%v, %v) = %v outside [lo, hi)", tt.lo, tt.hi, got)
			}
		})
	}
}

func TestPartitioner_MidpointSeparatesClasses(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{name: "adjacent floats", values: []float64{1.0000000000000002, 1.0000000000000004}},
		{name: "full float range", values: []float64{-math.MaxFloat64, math.MaxFloat64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cuts := runPartitioner(tt.values, []int{0, 1}, 2, partitionConfig{placement: Midpoint})
			if len(cuts) != 1 {
				t.Fatalf("cuts = %v, want one cut", cuts)
			}
			if math.IsInf(cuts[0], 0) {
				t.Errorf("cut %v is not finite", cuts[0])
			}
			if cuts.Bin(tt.values[0]) != 0 || cuts.Bin(tt.values[1]) != 1 {
				t.Errorf("cuts %v do not separate %v", cuts, tt.values)
			}
		})
	}
}
