// Package model provides the estimator base type, lifecycle interfaces, and
// persistence helpers shared by the preprocessing estimators.
package model

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters keyed by snake_case name.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams validates and applies hyperparameters. Setting parameters on a
	// fitted model resets it.
	SetParams(params map[string]interface{}) error
}

// Configurable combines ParameterGetter and ParameterSetter.
type Configurable interface {
	ParameterGetter
	ParameterSetter
}
