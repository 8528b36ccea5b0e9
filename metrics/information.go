// Package metrics evaluates discretizations with information-theoretic
// measures. All quantities are in bits.
package metrics

import (
	"math"
	"slices"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Entropy はラベルのシャノンエントロピー（ビット単位）を計算する
//
// パラメータ:
//   - y: クラスラベル
//
// 戻り値:
//   - float64: H(y)
//   - error: y が空または非有限値を含む場合
func Entropy(y mat.Vector) (float64, error) {
	const op = "Entropy"
	values, err := vectorValues(op, y)
	if err != nil {
		return 0, err
	}
	return entropyOf(histogram(values)), nil
}

// ConditionalEntropy は H(y | bins) を計算する
// bins は Transform の出力列など、離散値の列であること
func ConditionalEntropy(bins, y mat.Vector) (float64, error) {
	const op = "ConditionalEntropy"
	b, labels, err := pair(op, bins, y)
	if err != nil {
		return 0, err
	}

	groups := make(map[float64][]float64)
	for i, v := range b {
		groups[v] = append(groups[v], labels[i])
	}
	n := float64(len(b))
	var h float64
	for _, key := range sortedKeys(groups) {
		members := groups[key]
		h += float64(len(members)) / n * entropyOf(histogram(members))
	}
	return h, nil
}

// MutualInformation は I(bins; y) = H(y) - H(y | bins) を計算する
func MutualInformation(bins, y mat.Vector) (float64, error) {
	hy, err := Entropy(y)
	if err != nil {
		return 0, err
	}
	hyb, err := ConditionalEntropy(bins, y)
	if err != nil {
		return 0, err
	}
	// 丸め誤差で負にならないようにする
	return math.Max(0, hy-hyb), nil
}

// GainRatio は情報利得比 I(bins; y) / H(bins) を計算する
// bins が単一の値しか持たない場合は 0 を返す
func GainRatio(bins, y mat.Vector) (float64, error) {
	mi, err := MutualInformation(bins, y)
	if err != nil {
		return 0, err
	}
	hb, err := Entropy(bins)
	if err != nil {
		return 0, err
	}
	if hb == 0 {
		return 0, nil
	}
	return mi / hb, nil
}

// ColumnMutualInformation は離散化済み行列の各列とラベルの相互情報量を返す
func ColumnMutualInformation(binned mat.Matrix, y mat.Vector) ([]float64, error) {
	const op = "ColumnMutualInformation"
	rows, cols := binned.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.WrapInvalidInput(op, "empty matrix", errors.ErrEmptyData)
	}
	out := make([]float64, cols)
	for j := range out {
		col := mat.NewVecDense(rows, mat.Col(nil, j, binned))
		mi, err := MutualInformation(col, y)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", j)
		}
		out[j] = mi
	}
	return out, nil
}

func vectorValues(op string, v mat.Vector) ([]float64, error) {
	n := v.Len()
	if n == 0 {
		return nil, errors.WrapInvalidInput(op, "empty vector", errors.ErrEmptyData)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v.AtVec(i)
		if !errors.IsFinite(out[i]) {
			return nil, errors.NewInvalidInputErrorf(op, "non-finite value %v at index %d", out[i], i)
		}
	}
	return out, nil
}

func pair(op string, bins, y mat.Vector) ([]float64, []float64, error) {
	if bins.Len() != y.Len() {
		return nil, nil, errors.NewDimensionError(op, bins.Len(), y.Len(), 0)
	}
	b, err := vectorValues(op, bins)
	if err != nil {
		return nil, nil, err
	}
	labels, err := vectorValues(op, y)
	if err != nil {
		return nil, nil, err
	}
	return b, labels, nil
}

// histogram returns the counts of each distinct value in ascending value order.
func histogram(values []float64) []float64 {
	counts := make(map[float64]float64)
	for _, v := range values {
		counts[v]++
	}
	out := make([]float64, 0, len(counts))
	for _, key := range sortedKeys(counts) {
		out = append(out, counts[key])
	}
	return out
}

func entropyOf(counts []float64) float64 {
	total := floats.Sum(counts)
	if total == 0 {
		return 0
	}
	p := slices.Clone(counts)
	floats.Scale(1/total, p)
	return stat.Entropy(p) / math.Ln2
}

func sortedKeys[V any](m map[float64]V) []float64 {
	keys := make([]float64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
