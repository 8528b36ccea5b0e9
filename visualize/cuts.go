// Package visualize renders diagnostic plots of fitted discretizations.
package visualize

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CutPointer is implemented by fitted discretizers.
type CutPointer interface {
	CutPoints(j int) ([]float64, error)
}

var palette = []color.RGBA{
	{R: 50, G: 50, B: 255, A: 255},
	{R: 255, A: 255},
	{G: 160, A: 255},
	{R: 200, G: 120, A: 255},
	{R: 140, B: 200, A: 255},
}

// PlotCutPoints draws column j of X against the class labels y, one colour per
// class, with a dashed vertical line at every cut point of the column. The
// format follows the extension of filename (png, svg, pdf, ...).
// Non-finite values are left out of the plot.
func PlotCutPoints(d CutPointer, X mat.Matrix, y mat.Vector, j int, filename string) error {
	const op = "PlotCutPoints"
	cuts, err := d.CutPoints(j)
	if err != nil {
		return err
	}
	rows, cols := X.Dims()
	if j < 0 || j >= cols {
		return errors.NewInvalidInputErrorf(op, "column %d out of range [0, %d)", j, cols)
	}
	if y.Len() != rows {
		return errors.NewDimensionError(op, rows, y.Len(), 0)
	}

	groups := make(map[float64]plotter.XYs)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < rows; i++ {
		v, label := X.At(i, j), y.AtVec(i)
		if !errors.IsFinite(v) || !errors.IsFinite(label) {
			continue
		}
		groups[label] = append(groups[label], plotter.XY{X: v, Y: label})
		lo, hi = math.Min(lo, label), math.Max(hi, label)
	}
	if len(groups) == 0 {
		return errors.NewInvalidInputErrorf(op, "column %d has no finite values", j)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cut points of feature %d", j)
	p.X.Label.Text = fmt.Sprintf("Feature %d", j)
	p.Y.Label.Text = "Class"

	classes := make([]float64, 0, len(groups))
	for label := range groups {
		classes = append(classes, label)
	}
	slices.Sort(classes)
	for k, label := range classes {
		s, err := plotter.NewScatter(groups[label])
		if err != nil {
			return errors.Wrapf(err, "scatter for class %v", label)
		}
		s.Color = palette[k%len(palette)]
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("class %v", label), s)
	}

	for _, c := range cuts {
		l, err := plotter.NewLine(plotter.XYs{{X: c, Y: lo - 0.5}, {X: c, Y: hi + 0.5}})
		if err != nil {
			return errors.Wrapf(err, "line for cut %v", c)
		}
		l.Color = color.RGBA{A: 255}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
	}

	err = errors.SafeExecute(op, func() error {
		return p.Save(6*vg.Inch, 4*vg.Inch, filename)
	})
	return errors.Wrapf(err, "failed to save plot to %s", filename)
}
