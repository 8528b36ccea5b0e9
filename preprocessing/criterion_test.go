package preprocessing

import (
	"math"
	"testing"
)

func TestMDLThreshold(t *testing.T) {
	tests := []struct {
		name      string
		n, k      int
		k1, k2    int
		h, h1, h2 float64
		want      float64
	}{
		{
			// 8 samples, perfect split into two pure halves
			name: "pure halves",
			n:    8, k: 2, k1: 1, k2: 1,
			h: 1, h1: 0, h2: 0,
			want: (math.Log2(7) + math.Log2(7) - 2) / 8,
		},
		{
			// [1,2,3,4] with labels [0,1,0,1] split after the first sample
			name: "alternating four",
			n:    4, k: 2, k1: 1, k2: 2,
			h: 1, h1: 0, h2: 0.9182958340544896,
			want: (math.Log2(3) + math.Log2(7) - (2 - 2*0.9182958340544896)) / 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mdlThreshold(tt.n, tt.k, tt.k1, tt.k2, tt.h, tt.h1, tt.h2)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("mdlThreshold = %v, want %v", got, tt.want)
			}
		})
	}

	// spelled out: Δ = log2(7) - 2 ≈ 0.8074, threshold ≈ 0.4518
	if got := mdlThreshold(8, 2, 1, 1, 1, 0, 0); math.Abs(got-0.45183873) > 1e-8 {
		t.Errorf("pure halves threshold = %v, want ≈0.45183873", got)
	}
	// Δ ≈ 2.6439, threshold ≈ 1.0572 which a gain of ≈0.3113 does not clear
	if got := mdlThreshold(4, 2, 1, 2, 1, 0, 0.9182958340544896); math.Abs(got-1.05722727) > 1e-8 {
		t.Errorf("alternating threshold = %v, want ≈1.05722727", got)
	}
}

func bestSplitOf(t *testing.T, values []float64, labels []int, nClasses int) *split {
	t.Helper()
	view := newSortedView(values, labels, nClasses)
	p := newPartitioner(view, partitionConfig{minIntervalSize: 2})
	s, ok := p.bestSplit(interval{lo: 0, hi: view.len(), counts: view.countLabels(0, view.len())})
	if !ok {
		t.Fatal("expected a candidate split")
	}
	return s
}

func TestCriterion_Accepts(t *testing.T) {
	pure := bestSplitOf(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, []int{0, 0, 0, 0, 1, 1, 1, 1}, 2)
	alternating := bestSplitOf(t, []float64{1, 2, 3, 4}, []int{0, 1, 0, 1}, 2)

	tests := []struct {
		name      string
		criterion Criterion
		split     *split
		want      bool
	}{
		{"fayyad irani pure halves", FayyadIrani, pure, true},
		{"fayyad irani alternating", FayyadIrani, alternating, false},
		{"kononenko pure halves", Kononenko, pure, true},
		{"kononenko alternating", Kononenko, alternating, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criterion.accepts(tt.split); got != tt.want {
				t.Errorf("accepts() = %v, want %v (gain=%v)", got, tt.want, tt.split.gain)
			}
		})
	}
}

func TestKononenkoTerms(t *testing.T) {
	// log2 C(9,1) = log2 9
	if got := log2Binomial(9, 1); math.Abs(got-math.Log2(9)) > 1e-9 {
		t.Errorf("log2Binomial(9,1) = %v", got)
	}
	// 8!/(4!4!) = 70
	if got := log2Multinomial(8, []int{4, 4}); math.Abs(got-math.Log2(70)) > 1e-9 {
		t.Errorf("log2Multinomial(8,[4 4]) = %v", got)
	}
	if got := log2Multinomial(5, []int{5, 0}); math.Abs(got) > 1e-9 {
		t.Errorf("log2Multinomial of a pure table = %v, want 0", got)
	}
}

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		in      string
		want    Criterion
		wantErr bool
	}{
		{"fayyad_irani", FayyadIrani, false},
		{"Fayyad-Irani", FayyadIrani, false},
		{"kononenko", Kononenko, false},
		{"gini", FayyadIrani, true},
	}
	for _, tt := range tests {
		got, err := ParseCriterion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCriterion(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCriterion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Kononenko.String() != "kononenko" || FayyadIrani.String() != "fayyad_irani" {
		t.Error("unexpected criterion names")
	}
}
