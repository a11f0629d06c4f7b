// Package errors はライブラリ全体のエラーハンドリングと警告システムを提供します。
// pandasの例外・警告システムにインスパイアされており、データセットやカラムに
// 関する構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("josemltools-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、DataConversionWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	pandas互換の警告型
//
// ===========================================================================

// DataConversionWarning はカラムの型が暗黙的に変換された場合に発生する警告です。
// 例えば、CSVの数値カラムに数値として解釈できないセルが混ざっていた場合など。
type DataConversionWarning struct {
	Column   string
	FromKind string
	ToKind   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("column %q converted from %s to %s. Reason: %s", w.Column, w.FromKind, w.ToKind, w.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("column", w.Column).
		Str("from_kind", w.FromKind).
		Str("to_kind", w.ToKind).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning は新しいDataConversionWarningを作成します。
func NewDataConversionWarning(column, from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{Column: column, FromKind: from, ToKind: to, Reason: reason}
}

// ApproximationWarning は統計量の近似精度が保証できない場合に発生する警告です。
// 例えば、Shapiro-Wilk検定にサンプル数5000超のデータを渡した場合など。
type ApproximationWarning struct {
	Statistic string
	Condition string
	Message   string
}

func (w *ApproximationWarning) Error() string {
	return fmt.Sprintf("'%s' may be inaccurate: %s. %s", w.Statistic, w.Condition, w.Message)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ApproximationWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("statistic", w.Statistic).
		Str("condition", w.Condition).
		Str("message", w.Message).
		Str("type", "ApproximationWarning")
}

// NewApproximationWarning は新しいApproximationWarningを作成します。
func NewApproximationWarning(statistic, condition, message string) *ApproximationWarning {
	return &ApproximationWarning{Statistic: statistic, Condition: condition, Message: message}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ColumnNotFoundError は存在しないカラムを参照した場合のエラーです。
type ColumnNotFoundError struct {
	Op     string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("josemltools: %s: column %q not found in frame", e.Op, e.Column)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError は新しいColumnNotFoundErrorを作成し、スタックトレースを付与します。
func NewColumnNotFoundError(op, column string) error {
	err := &ColumnNotFoundError{Op: op, Column: column}
	return errors.WithStack(err)
}

// ColumnKindError はカラムの型が操作の期待と異なる場合のエラーです。
// 例えば、カテゴリカルなカラムに対して連続変数の分析を要求した場合など。
type ColumnKindError struct {
	Op       string
	Column   string
	Expected string
	Got      string
}

func (e *ColumnKindError) Error() string {
	return fmt.Sprintf("josemltools: %s: column %q is %s, expected %s", e.Op, e.Column, e.Got, e.Expected)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ColumnKindError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("expected", e.Expected).
		Str("got", e.Got).
		Str("type", "ColumnKindError")
}

// NewColumnKindError は新しいColumnKindErrorを作成し、スタックトレースを付与します。
func NewColumnKindError(op, column, expected, got string) error {
	err := &ColumnKindError{Op: op, Column: column, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// EmptyDataError はデータが空、または欠損値のみで統計量が計算できない場合のエラーです。
type EmptyDataError struct {
	Op     string
	Reason string
}

func (e *EmptyDataError) Error() string {
	return fmt.Sprintf("josemltools: %s: no usable data (%s)", e.Op, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *EmptyDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "EmptyDataError")
}

// NewEmptyDataError は新しいEmptyDataErrorを作成し、スタックトレースを付与します。
func NewEmptyDataError(op, reason string) error {
	err := &EmptyDataError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// InsufficientSamplesError は統計量の計算に必要なサンプル数が足りない場合のエラーです。
// 例えば、Shapiro-Wilk検定に3未満のサンプルを渡した場合など。
type InsufficientSamplesError struct {
	Op       string
	Required int
	Got      int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("josemltools: %s: needs at least %d samples, got %d", e.Op, e.Required, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InsufficientSamplesError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("required", e.Required).
		Int("got", e.Got).
		Str("type", "InsufficientSamplesError")
}

// NewInsufficientSamplesError は新しいInsufficientSamplesErrorを作成し、スタックトレースを付与します。
func NewInsufficientSamplesError(op string, required, got int) error {
	err := &InsufficientSamplesError{Op: op, Required: required, Got: got}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// `ValueError`よりも具体的なバリデーションロジックの失敗を示します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("josemltools: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
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
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、分位点に[0,1]の範囲外の値を渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("josemltools: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
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
