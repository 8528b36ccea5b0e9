// Package log defines standard attribute keys for discretization operations.
//
// Keys follow a hierarchical naming convention (e.g. "ml.operation",
// "data.samples") so records can be filtered consistently.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of estimator, e.g. "MDLPDiscretizer".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component is logging.
	ComponentKey = "component"

	// PhaseKey indicates the phase of the estimator lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey is the number of samples (rows).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns).
	FeaturesKey = "data.features"

	// ClassesKey is the size of the label alphabet.
	ClassesKey = "data.classes"
)

// Discretization results
const (
	// FeatureKey is the column index a record refers to.
	FeatureKey = "mdlp.feature"

	// CutsKey is the number of accepted cut points.
	CutsKey = "mdlp.cuts"

	// ValidSamplesKey is the number of finite values used to fit a column.
	ValidSamplesKey = "mdlp.valid_samples"

	// CriterionKey is the stopping criterion in use.
	CriterionKey = "mdlp.criterion"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey is the number of parallel workers used.
	WorkersKey = "perf.workers"
)

// Error Context
const (
	// ErrorKey holds the error message of a record.
	ErrorKey = "error"

	// ErrorDetailKey holds the structured form of errors implementing
	// zerolog.LogObjectMarshaler.
	ErrorDetailKey = "error.detail"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationFit       = "fit"
	OperationTransform = "transform"

	PhaseTraining      = "training"
	PhasePreprocessing = "preprocessing"
)
