package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// entropy returns the Shannon entropy in bits of a label-count table whose
// entries sum to total. prob must have len(counts) capacity; it is used as
// scratch space so the hot loop does not allocate.
//
// stat.Entropy skips zero probabilities, which gives 0·log(0) = 0.
func entropy(counts []int, total int, prob []float64) float64 {
	if total <= 0 {
		return 0
	}
	prob = prob[:len(counts)]
	inv := 1 / float64(total)
	for c, n := range counts {
		prob[c] = float64(n) * inv
	}
	return stat.Entropy(prob) / math.Ln2
}

// distinct returns the number of classes with a non-zero count.
func distinct(counts []int) int {
	k := 0
	for _, n := range counts {
		if n > 0 {
			k++
		}
	}
	return k
}
