package main

import (
	"encoding/csv"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// dataset is a numeric CSV table with an optional class column.
type dataset struct {
	features []string
	X        *mat.Dense
	// labels holds the raw class column, nil when the table has none.
	labels []string
}

// missingTokens are cell values read as NaN.
var missingTokens = []string{"", "na", "nan", "null", "?"}

// readCSV reads a CSV table with a header row. The column named labelColumn,
// if present, is kept as text; every other column must be numeric or missing.
func readCSV(r io.Reader, labelColumn string) (*dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV")
	}
	if len(records) < 2 {
		return nil, errors.New("CSV input needs a header row and at least one sample")
	}

	header := records[0]
	labelIdx := slices.Index(header, labelColumn)
	ds := &dataset{}
	for i, name := range header {
		if i != labelIdx {
			ds.features = append(ds.features, name)
		}
	}
	if len(ds.features) == 0 {
		return nil, errors.New("CSV input has no feature columns")
	}

	rows := records[1:]
	ds.X = mat.NewDense(len(rows), len(ds.features), nil)
	if labelIdx >= 0 {
		ds.labels = make([]string, len(rows))
	}
	for i, record := range rows {
		j := 0
		for k, cell := range record {
			if k == labelIdx {
				ds.labels[i] = strings.TrimSpace(cell)
				continue
			}
			v, err := parseCell(cell)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %q", i+2, header[k])
			}
			ds.X.Set(i, j, v)
			j++
		}
	}
	return ds, nil
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if slices.Contains(missingTokens, strings.ToLower(cell)) {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

// encodeClasses maps class names to codes in ascending name order and returns
// the code vector together with the names.
func encodeClasses(labels []string) (*mat.VecDense, []string) {
	classes := slices.Clone(labels)
	slices.Sort(classes)
	classes = slices.Compact(classes)

	y := mat.NewVecDense(len(labels), nil)
	for i, label := range labels {
		code, _ := slices.BinarySearch(classes, label)
		y.SetVec(i, float64(code))
	}
	return y, classes
}

// columnIndices resolves feature names to column indices.
func columnIndices(features, names []string) ([]int, error) {
	cols := make([]int, 0, len(names))
	for _, name := range names {
		j := slices.Index(features, name)
		if j < 0 {
			return nil, errors.Newf("unknown column %q", name)
		}
		cols = append(cols, j)
	}
	return cols, nil
}

// writeCSV writes m under header. When labels is not nil it is appended as a
// last text column, so header must name it.
func writeCSV(w io.Writer, header []string, m mat.Matrix, labels []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	rows, cols := m.Dims()
	record := make([]string, cols, cols+1)
	for i := 0; i < rows; i++ {
		record = record[:cols]
		for j := range record {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if labels != nil {
			record = append(record, labels[i])
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing CSV row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing CSV")
}
