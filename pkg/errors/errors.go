// Package errors はディスクリタイザ全体のエラーハンドリングを提供します。
// cockroachdb/errors の上に構造化されたエラー型を定義し、
// すべてのコンストラクタはスタックトレースを付与します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrInvalidInput は入力データが不正な場合のセンチネルです。
	// InvalidInputError と DimensionError はどちらも errors.Is でこれに一致します。
	ErrInvalidInput = New("invalid input")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidInputError は fit / transform に渡された入力が不正な場合のエラーです。
// 形状の不一致、空のデータセット、範囲外の列インデックス、非有限値などを表します。
type InvalidInputError struct {
	Op     string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mdlp: %s: invalid input: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("mdlp: %s: invalid input: %s", e.Op, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// Is は ErrInvalidInput との比較を可能にします。
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "InvalidInputError")
	if e.Err != nil {
		event.Str("cause", e.Err.Error())
	}
}

// NewInvalidInputError は新しいInvalidInputErrorを作成し、スタックトレースを付与します。
func NewInvalidInputError(op, reason string) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: reason})
}

// NewInvalidInputErrorf はフォーマット済みの理由でInvalidInputErrorを作成します。
func NewInvalidInputErrorf(op, format string, args ...interface{}) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

// WrapInvalidInput は原因となるエラーをInvalidInputErrorで包みます。
func WrapInvalidInput(op, reason string, err error) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: reason, Err: err})
}

// NotFittedError はモデルが未学習の状態で `Transform` や `CutPoints` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("mdlp: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("mdlp: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

// Is は ErrInvalidInput との比較を可能にします。
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError はハイパーパラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mdlp: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// GetSafeDetails はエラーチェーンの最初のセーフディテール（スタックトレースを含む）を返します。
func GetSafeDetails(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
