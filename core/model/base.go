package model

import "github.com/YuminosukeSato/mdlp/pkg/errors"

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// BaseEstimator は全ての推定器の基底となる構造体
// gob で保存できるようにフィールドは公開している
type BaseEstimator struct {
	State EstimatorState

	// NFeaturesIn は学習時の特徴量数
	NFeaturesIn int
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.State == Fitted
}

// SetFitted はモデルを学習済み状態に設定し、学習時の特徴量数を記録する
func (e *BaseEstimator) SetFitted(nFeatures int) {
	e.State = Fitted
	e.NFeaturesIn = nFeatures
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.State = NotFitted
	e.NFeaturesIn = 0
}

// RequireFitted は未学習の場合に NotFittedError を返す
func (e *BaseEstimator) RequireFitted(modelName, method string) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

// CheckNFeatures は入力の列数が学習時と一致するか検証する
func (e *BaseEstimator) CheckNFeatures(op string, got int) error {
	if got != e.NFeaturesIn {
		return errors.NewDimensionError(op, e.NFeaturesIn, got, 1)
	}
	return nil
}
