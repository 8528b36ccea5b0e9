package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func vec(values ...float64) *mat.VecDense {
	return mat.NewVecDense(len(values), values)
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name string
		y    []float64
		want float64
	}{
		{name: "Single class", y: []float64{1, 1, 1}, want: 0},
		{name: "Balanced binary", y: []float64{0, 1, 0, 1}, want: 1},
		{name: "Four classes", y: []float64{0, 1, 2, 3}, want: 2},
		{name: "Skewed", y: []float64{0, 0, 0, 1}, want: 0.8112781244591328},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Entropy(vec(tt.y...))
			if err != nil {
				t.Fatalf("Entropy() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMutualInformation(t *testing.T) {
	tests := []struct {
		name      string
		bins      []float64
		y         []float64
		wantMI    float64
		wantRatio float64
	}{
		{
			name:      "Perfect bins",
			bins:      []float64{0, 0, 1, 1},
			y:         []float64{5, 5, 7, 7},
			wantMI:    1,
			wantRatio: 1,
		},
		{
			name:      "Single bin",
			bins:      []float64{0, 0, 0, 0},
			y:         []float64{0, 1, 0, 1},
			wantMI:    0,
			wantRatio: 0,
		},
		{
			name:      "Independent",
			bins:      []float64{0, 1, 0, 1},
			y:         []float64{0, 0, 1, 1},
			wantMI:    0,
			wantRatio: 0,
		},
		{
			name:      "Over-split",
			bins:      []float64{0, 1, 2, 3},
			y:         []float64{0, 0, 1, 1},
			wantMI:    1,
			wantRatio: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mi, err := MutualInformation(vec(tt.bins...), vec(tt.y...))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(mi-tt.wantMI) > 1e-12 {
				t.Errorf("MutualInformation() = %v, want %v", mi, tt.wantMI)
			}
			ratio, err := GainRatio(vec(tt.bins...), vec(tt.y...))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(ratio-tt.wantRatio) > 1e-12 {
				t.Errorf("GainRatio() = %v, want %v", ratio, tt.wantRatio)
			}
		})
	}
}

func TestConditionalEntropy(t *testing.T) {
	// bin 0 holds {0,0,1} and bin 1 holds {1}
	got, err := ConditionalEntropy(vec(0, 0, 0, 1), vec(0, 0, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := 0.75 * 0.9182958340544896
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ConditionalEntropy() = %v, want %v", got, want)
	}
}

func TestColumnMutualInformation(t *testing.T) {
	binned := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	got, err := ColumnMutualInformation(binned, vec(0, 0, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got[0]-1) > 1e-12 || math.Abs(got[1]) > 1e-12 {
		t.Errorf("ColumnMutualInformation() = %v, want [1 0]", got)
	}
}

func TestInformationErrors(t *testing.T) {
	if _, err := Entropy(&mat.VecDense{}); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
	if _, err := MutualInformation(vec(0, 1), vec(0, 1, 1)); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected invalid input for length mismatch, got %v", err)
	}
	if _, err := ConditionalEntropy(vec(0, math.NaN()), vec(0, 1)); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected invalid input for NaN, got %v", err)
	}
}
