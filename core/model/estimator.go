package model

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// Fitter は教師ラベルを使って学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// ContextFitter はキャンセル可能な学習をサポートするモデルのインターフェース
type ContextFitter interface {
	FitContext(ctx context.Context, X, y mat.Matrix) error
}

// SupervisedTransformer はラベルを使って学習し、特徴量のみで変換を行う変換器
// 教師あり離散化のように Fit には y が必要だが Transform には不要なものを表す
type SupervisedTransformer interface {
	Fitter

	// Transform は学習済みのパラメータでデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X, y mat.Matrix) (mat.Matrix, error)
}
