package preprocessing

import (
	"math"
	"strings"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// Criterion selects the minimum-description-length rule that decides whether
// the best split of an interval is kept.
type Criterion int

const (
	// FayyadIrani accepts a split iff gain > [log2(n-1) + Δ] / n with
	// Δ = log2(3^k - 2) - [k·H(S) - k1·H(S1) - k2·H(S2)].
	FayyadIrani Criterion = iota
	// Kononenko compares the coding cost of the class distribution and the
	// instances before and after the split.
	Kononenko
)

// String returns the parameter value of the criterion.
func (c Criterion) String() string {
	switch c {
	case FayyadIrani:
		return "fayyad_irani"
	case Kononenko:
		return "kononenko"
	default:
		return "unknown"
	}
}

// ParseCriterion parses "fayyad_irani" or "kononenko".
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "fayyad_irani", "fayyad", "mdlpc":
		return FayyadIrani, nil
	case "kononenko":
		return Kononenko, nil
	default:
		return FayyadIrani, errors.NewValidationError("criterion", "must be fayyad_irani or kononenko", s)
	}
}

// split is the best candidate found for one interval together with the
// statistics both criteria need.
type split struct {
	// pos is the last sorted position of the left part.
	pos int

	n, n1, n2 int

	parent, left, right []int

	h, h1, h2 float64
	gain      float64

	// candidates is the number of admissible split positions in the interval.
	candidates int
}

func (c Criterion) accepts(s *split) bool {
	if c == Kononenko {
		return kononenkoAccepts(s)
	}
	return s.gain > mdlThreshold(s.n, distinct(s.parent), distinct(s.left), distinct(s.right), s.h, s.h1, s.h2)
}

// mdlThreshold returns the Fayyad-Irani acceptance bound for an interval of n
// samples with k classes split into parts with k1 and k2 classes.
func mdlThreshold(n, k, k1, k2 int, h, h1, h2 float64) float64 {
	delta := math.Log2(math.Pow(3, float64(k))-2) -
		(float64(k)*h - float64(k1)*h1 - float64(k2)*h2)
	return (math.Log2(float64(n-1)) + delta) / float64(n)
}

func kononenkoAccepts(s *split) bool {
	k := float64(distinct(s.parent))

	before := log2Binomial(float64(s.n)+k-1, k-1) + log2Multinomial(s.n, s.parent)

	after := math.Log2(float64(s.candidates))
	for _, part := range []struct {
		n      int
		counts []int
	}{{s.n1, s.left}, {s.n2, s.right}} {
		after += log2Binomial(float64(part.n)+k-1, k-1) + log2Multinomial(part.n, part.counts)
	}
	return before > after
}

func log2Binomial(n, k float64) float64 {
	return combin.LogGeneralizedBinomial(n, k) / math.Ln2
}

// log2Multinomial returns log2(n! / Π c!).
func log2Multinomial(n int, counts []int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	for _, c := range counts {
		l, _ := math.Lgamma(float64(c) + 1)
		lg -= l
	}
	return lg / math.Ln2
}
