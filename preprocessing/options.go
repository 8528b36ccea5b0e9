package preprocessing

import (
	"strings"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/pkg/log"
)

// MissingValuePolicy decides how non-finite feature values are handled.
type MissingValuePolicy int

const (
	// MissingError rejects non-finite values in discretized columns.
	MissingError MissingValuePolicy = iota
	// MissingDedicatedBin ignores non-finite values while fitting a column and
	// maps them to bin len(cuts)+1 at transform time.
	MissingDedicatedBin
)

// String returns the parameter value of the policy.
func (p MissingValuePolicy) String() string {
	switch p {
	case MissingError:
		return "error"
	case MissingDedicatedBin:
		return "dedicated_bin"
	default:
		return "unknown"
	}
}

// ParseMissingValuePolicy parses "error" or "dedicated_bin".
func ParseMissingValuePolicy(s string) (MissingValuePolicy, error) {
	switch strings.ToLower(s) {
	case "error":
		return MissingError, nil
	case "dedicated_bin", "dedicated":
		return MissingDedicatedBin, nil
	default:
		return MissingError, errors.NewValidationError("missing_value_policy", "must be error or dedicated_bin", s)
	}
}

// CutPlacement chooses the threshold emitted for an accepted split between
// sorted positions i and i+1.
type CutPlacement int

const (
	// LeftValue uses the value at position i, so the left bin is closed at an
	// observed value.
	LeftValue CutPlacement = iota
	// Midpoint uses the halfway point between the values at i and i+1, as the
	// Weka and python mdlp implementations do.
	Midpoint
)

// String returns the parameter value of the placement.
func (c CutPlacement) String() string {
	switch c {
	case LeftValue:
		return "left_value"
	case Midpoint:
		return "midpoint"
	default:
		return "unknown"
	}
}

// ParseCutPlacement parses "left_value" or "midpoint".
func ParseCutPlacement(s string) (CutPlacement, error) {
	switch strings.ToLower(s) {
	case "left_value", "left":
		return LeftValue, nil
	case "midpoint", "mid":
		return Midpoint, nil
	default:
		return LeftValue, errors.NewValidationError("cut_placement", "must be left_value or midpoint", s)
	}
}

// Option configures an MDLPDiscretizer.
type Option func(*MDLPDiscretizer)

// WithMinIntervalSize sets the minimum number of samples an interval needs
// before a split is attempted. Values below 2 are rejected by Fit.
func WithMinIntervalSize(n int) Option {
	return func(d *MDLPDiscretizer) {
		d.MinIntervalSize = n
	}
}

// WithMinDepth forces splits above the given recursion depth regardless of
// the stopping criterion, as long as some split reduces entropy.
func WithMinDepth(depth int) Option {
	return func(d *MDLPDiscretizer) {
		d.MinDepth = depth
	}
}

// WithMissingValuePolicy sets how non-finite values are handled.
func WithMissingValuePolicy(p MissingValuePolicy) Option {
	return func(d *MDLPDiscretizer) {
		d.MissingPolicy = p
	}
}

// WithContinuousColumns restricts discretization to the given columns. Other
// columns are copied unchanged by Transform. No columns means all columns.
func WithContinuousColumns(cols ...int) Option {
	return func(d *MDLPDiscretizer) {
		if len(cols) == 0 {
			d.ContinuousColumns = nil
			return
		}
		d.ContinuousColumns = append([]int(nil), cols...)
	}
}

// WithCriterion selects the stopping criterion.
func WithCriterion(c Criterion) Option {
	return func(d *MDLPDiscretizer) {
		d.Criterion = c
	}
}

// WithCutPlacement selects how thresholds are placed between samples.
func WithCutPlacement(c CutPlacement) Option {
	return func(d *MDLPDiscretizer) {
		d.CutPlacement = c
	}
}

// WithNJobs sets the number of features fitted concurrently. 0 or a negative
// value uses one worker per CPU.
func WithNJobs(n int) Option {
	return func(d *MDLPDiscretizer) {
		d.NJobs = n
	}
}

// WithLogger sets the logger used for fit summaries.
func WithLogger(l log.Logger) Option {
	return func(d *MDLPDiscretizer) {
		d.logger = l
	}
}
