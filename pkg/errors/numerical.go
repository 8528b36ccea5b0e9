package errors

import (
	"math"
)

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckFiniteColumn scans one column of a matrix and returns an InvalidInputError
// naming the first non-finite cell.
func CheckFiniteColumn(op string, matrix interface{ At(int, int) float64 }, rows, col int) error {
	for i := 0; i < rows; i++ {
		if v := matrix.At(i, col); !IsFinite(v) {
			return NewInvalidInputErrorf(op, "non-finite value %v at row %d, column %d", v, i, col)
		}
	}
	return nil
}
