// Package mdlp is a supervised discretization library for Go.
//
// It splits continuous features into intervals using the recursive
// entropy-minimization heuristic of Fayyad & Irani with the Minimum
// Description Length stopping rule, or optionally Kononenko's MDL criterion.
// The API follows the scikit-learn style: construct,
// Fit on (X, y), then Transform.
//
// # Packages
//
//   - preprocessing: MDLPDiscretizer and its options
//   - metrics: entropy and mutual information of binned columns
//   - visualize: plots of a feature's values and cut points
//   - core/model: fitted-state handling and gob persistence
//   - core/parallel: per-feature worker fan-out
//   - pkg/errors, pkg/log: structured errors and logging
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mdlp/preprocessing"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(8, 1, []float64{1, 2, 3, 4, 5, 6, 7, 8})
//	    y := mat.NewVecDense(8, []float64{0, 0, 0, 0, 1, 1, 1, 1})
//
//	    d := preprocessing.NewMDLPDiscretizer()
//	    if err := d.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    cuts, _ := d.CutPoints(0)
//	    fmt.Println(cuts) // [4]
//
//	    bins, _ := d.Transform(mat.NewDense(2, 1, []float64{3, 7}))
//	    fmt.Println(bins.At(0, 0), bins.At(1, 0)) // 0 1
//	}
//
// # Error Handling
//
// Invalid data is reported with errors matching errors.ErrInvalidInput. A
// failed fit leaves the discretizer unfitted. Transform before Fit returns
// a *errors.NotFittedError.
//
// # Concurrency
//
// Features are fitted concurrently (see WithNJobs). A fitted discretizer is
// read-only and Transform may be called from multiple goroutines.
package mdlp
