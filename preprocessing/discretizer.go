package preprocessing

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/YuminosukeSato/mdlp/core/model"
	"github.com/YuminosukeSato/mdlp/core/parallel"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const (
	modelName = "MDLPDiscretizer"

	// transformParallelThreshold is the row count above which Transform
	// spreads rows over CPU cores.
	transformParallelThreshold = 4096
)

var (
	_ model.SupervisedTransformer = (*MDLPDiscretizer)(nil)
	_ model.ContextFitter         = (*MDLPDiscretizer)(nil)
	_ model.Configurable          = (*MDLPDiscretizer)(nil)
)

// MDLPDiscretizer は教師ラベルを使って連続値の特徴量を区間に離散化する
// Fayyad & Irani の再帰的エントロピー最小化と MDL 停止規則で各特徴量のカットポイントを求める
//
// 学習後の状態は特徴量ごとに独立した CutSet で、Transform からは読み取り専用で参照される
// そのため Transform は複数の goroutine から同時に呼び出してよい
type MDLPDiscretizer struct {
	model.BaseEstimator

	// Cuts は列インデックスから学習済みカットセットへのマップ
	Cuts map[int]CutSet

	// Columns は離散化した列インデックス（昇順）
	Columns []int

	// ClassValues は学習時に観測したクラスラベル（昇順）
	ClassValues []float64

	// MinIntervalSize は分割を試みる区間の最小サンプル数 (デフォルト: 2)
	MinIntervalSize int

	// MinDepth 未満の深さでは MDL 判定を行わずに分割する (デフォルト: 0)
	MinDepth int

	// MissingPolicy は非有限値の扱い (デフォルト: MissingError)
	MissingPolicy MissingValuePolicy

	// ContinuousColumns は離散化する列 (nil の場合は全列)
	ContinuousColumns []int

	// Criterion は停止規則 (デフォルト: FayyadIrani)
	Criterion Criterion

	// CutPlacement はカットポイントの位置 (デフォルト: LeftValue)
	CutPlacement CutPlacement

	// NJobs は並列に学習する特徴量の数 (0 以下は CPU 数)
	NJobs int

	logger log.Logger
}

// NewMDLPDiscretizer は新しいMDLPDiscretizerを作成する
//
// パラメータ:
//   - opts: WithMinIntervalSize, WithCriterion などのオプション
//
// 戻り値:
//   - *MDLPDiscretizer: 新しいMDLPDiscretizerインスタンス
//
// 使用例:
//
//	d := preprocessing.NewMDLPDiscretizer(
//	    preprocessing.WithContinuousColumns(0, 2),
//	)
//	err := d.Fit(X, y)
//	XBinned, err := d.Transform(X)
func NewMDLPDiscretizer(opts ...Option) *MDLPDiscretizer {
	d := &MDLPDiscretizer{
		MinIntervalSize: 2,
		MissingPolicy:   MissingError,
		Criterion:       FayyadIrani,
		CutPlacement:    LeftValue,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fit は各特徴量のカットポイントを学習する
//
// パラメータ:
//   - X: 訓練データ (n_samples × n_features の行列)
//   - y: クラスラベル (n_samples × 1 の行列またはベクトル)
//
// 戻り値:
//   - error: 入力が不正な場合は ErrInvalidInput に一致するエラー
func (d *MDLPDiscretizer) Fit(X, y mat.Matrix) error {
	return d.FitContext(context.Background(), X, y)
}

// FitContext は Fit と同じだが、ctx がキャンセルされると残りの特徴量の学習を中止する
// 失敗した場合、学習状態は未学習に戻り部分的な結果は残らない
func (d *MDLPDiscretizer) FitContext(ctx context.Context, X, y mat.Matrix) error {
	const op = "MDLPDiscretizer.Fit"
	start := time.Now()
	d.reset()

	if err := d.validateParams(); err != nil {
		return err
	}

	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.WrapInvalidInput(op, "empty dataset", errors.ErrEmptyData)
	}
	labels, err := labelColumn(op, y)
	if err != nil {
		return err
	}
	if len(labels) != rows {
		return errors.WrapInvalidInput(op, "X and y have different numbers of samples",
			errors.NewDimensionError(op, rows, len(labels), 0))
	}
	columns, err := d.resolveColumns(op, cols)
	if err != nil {
		return err
	}
	ids, classes, err := encodeLabels(op, labels)
	if err != nil {
		return err
	}

	logger := d.log().With(log.ModelNameKey, modelName, log.PhaseKey, log.PhaseTraining)
	cfg := partitionConfig{
		minIntervalSize: d.MinIntervalSize,
		minDepth:        d.MinDepth,
		criterion:       d.Criterion,
		placement:       d.CutPlacement,
	}
	workers := parallel.Workers(d.NJobs, len(columns))
	results := make([]CutSet, len(columns))

	err = parallel.ForEach(ctx, len(columns), workers, func(_ context.Context, i int) error {
		j := columns[i]
		cuts, nValid, err := fitColumn(op, X, j, ids, len(classes), d.MissingPolicy, cfg)
		if err != nil {
			return err
		}
		results[i] = cuts
		logger.Debug("Feature discretized",
			log.FeatureKey, j,
			log.CutsKey, len(cuts),
			log.ValidSamplesKey, nValid)
		return nil
	})
	if err != nil {
		logger.Error("Fit aborted", err, log.OperationKey, log.OperationFit)
		return err
	}

	d.Cuts = make(map[int]CutSet, len(columns))
	totalCuts := 0
	for i, j := range columns {
		d.Cuts[j] = results[i]
		totalCuts += len(results[i])
	}
	d.Columns = columns
	d.ClassValues = classes
	d.SetFitted(cols)

	logger.Info("Fit completed",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, rows,
		log.FeaturesKey, len(columns),
		log.ClassesKey, len(classes),
		log.CutsKey, totalCuts,
		log.CriterionKey, d.Criterion.String(),
		log.WorkersKey, workers,
		log.DurationMsKey, time.Since(start).Milliseconds())
	return nil
}

// fitColumn discretizes column j of X and returns its cut set and the number
// of finite values it was fitted on. It only reads X.
func fitColumn(op string, X mat.Matrix, j int, ids []int, nClasses int, policy MissingValuePolicy, cfg partitionConfig) (CutSet, int, error) {
	rows, _ := X.Dims()
	values := make([]float64, 0, rows)
	labels := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		v := X.At(i, j)
		if !errors.IsFinite(v) {
			if policy == MissingError {
				return nil, 0, errors.NewInvalidInputErrorf(op,
					"non-finite value %v at row %d, column %d", v, i, j)
			}
			continue
		}
		values = append(values, v)
		labels = append(labels, ids[i])
	}

	view := newSortedView(values, labels, nClasses)
	cuts := newCutSet(newPartitioner(view, cfg).run())
	return cuts, len(values), nil
}

// Transform は学習済みのカットポイントで各値をビン番号に変換する
// 離散化対象外の列はそのままコピーされる
//
// パラメータ:
//   - X: 変換するデータ (列数は学習時と同じ)
//
// 戻り値:
//   - mat.Matrix: ビン番号 (0 から len(cuts) まで。欠損値ビンは len(cuts)+1)
//   - error: エラーが発生した場合
func (d *MDLPDiscretizer) Transform(X mat.Matrix) (mat.Matrix, error) {
	const op = "MDLPDiscretizer.Transform"
	if err := d.RequireFitted(modelName, "Transform"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	if err := d.CheckNFeatures(op, cols); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, errors.WrapInvalidInput(op, "empty dataset", errors.ErrEmptyData)
	}
	if d.MissingPolicy == MissingError {
		for _, j := range d.Columns {
			if err := errors.CheckFiniteColumn(op, X, rows, j); err != nil {
				return nil, err
			}
		}
	}

	result := mat.NewDense(rows, cols, nil)
	parallel.ParallelizeWithThreshold(rows, transformParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < cols; j++ {
				result.Set(i, j, d.transformValue(j, X.At(i, j)))
			}
		}
	})
	d.log().Debug("Transform completed",
		log.ModelNameKey, modelName,
		log.OperationKey, log.OperationTransform,
		log.PhaseKey, log.PhasePreprocessing,
		log.SamplesKey, rows)
	return result, nil
}

func (d *MDLPDiscretizer) transformValue(j int, v float64) float64 {
	cuts, ok := d.Cuts[j]
	if !ok {
		return v
	}
	if !errors.IsFinite(v) {
		return float64(len(cuts) + 1)
	}
	return float64(cuts.Bin(v))
}

// FitTransform は学習と変換を同時に実行する
func (d *MDLPDiscretizer) FitTransform(X, y mat.Matrix) (mat.Matrix, error) {
	if err := d.Fit(X, y); err != nil {
		return nil, err
	}
	return d.Transform(X)
}

// CutPoints は列 j の学習済みカットポイントのコピーを返す
// 分割が受理されなかった列では空のスライスを返す
func (d *MDLPDiscretizer) CutPoints(j int) ([]float64, error) {
	cuts, err := d.cutSet("CutPoints", j)
	if err != nil {
		return nil, err
	}
	return append([]float64{}, cuts...), nil
}

// Intervals は列 j の各ビンが表す値の範囲 (Lo, Hi] を返す
func (d *MDLPDiscretizer) Intervals(j int) ([]Interval, error) {
	cuts, err := d.cutSet("Intervals", j)
	if err != nil {
		return nil, err
	}
	return cuts.Intervals(), nil
}

func (d *MDLPDiscretizer) cutSet(method string, j int) (CutSet, error) {
	op := modelName + "." + method
	if err := d.RequireFitted(modelName, method); err != nil {
		return nil, err
	}
	if j < 0 || j >= d.NFeaturesIn {
		return nil, errors.NewInvalidInputErrorf(op, "column %d out of range [0, %d)", j, d.NFeaturesIn)
	}
	cuts, ok := d.Cuts[j]
	if !ok {
		return nil, errors.NewInvalidInputErrorf(op, "column %d is not a continuous column", j)
	}
	return cuts, nil
}

// Classes は学習時に観測したクラスラベルを昇順で返す
func (d *MDLPDiscretizer) Classes() []float64 {
	return slices.Clone(d.ClassValues)
}

// NFeatures は学習時の特徴量数を返す
func (d *MDLPDiscretizer) NFeatures() int {
	return d.NFeaturesIn
}

// GetParams はハイパーパラメータを取得する
func (d *MDLPDiscretizer) GetParams() map[string]interface{} {
	var cols interface{} = "all"
	if d.ContinuousColumns != nil {
		cols = slices.Clone(d.ContinuousColumns)
	}
	return map[string]interface{}{
		"min_interval_size":    d.MinIntervalSize,
		"min_depth":            d.MinDepth,
		"missing_value_policy": d.MissingPolicy.String(),
		"continuous_columns":   cols,
		"criterion":            d.Criterion.String(),
		"cut_placement":        d.CutPlacement.String(),
		"n_jobs":               d.NJobs,
	}
}

// SetParams はハイパーパラメータを設定する
// 学習済みの場合は未学習状態に戻る
func (d *MDLPDiscretizer) SetParams(params map[string]interface{}) error {
	next := *d
	for _, key := range slices.Sorted(maps.Keys(params)) {
		value := params[key]
		var err error
		switch key {
		case "min_interval_size":
			next.MinIntervalSize, err = toInt(key, value)
		case "min_depth":
			next.MinDepth, err = toInt(key, value)
		case "n_jobs":
			next.NJobs, err = toInt(key, value)
		case "missing_value_policy":
			next.MissingPolicy, err = parseParam(key, value, ParseMissingValuePolicy)
		case "criterion":
			next.Criterion, err = parseParam(key, value, ParseCriterion)
		case "cut_placement":
			next.CutPlacement, err = parseParam(key, value, ParseCutPlacement)
		case "continuous_columns":
			next.ContinuousColumns, err = toColumns(key, value)
		default:
			err = errors.NewValidationError(key, "unknown parameter", value)
		}
		if err != nil {
			return err
		}
	}
	if err := next.validateParams(); err != nil {
		return err
	}
	*d = next
	d.reset()
	return nil
}

// String はディスクリタイザの文字列表現を返す
func (d *MDLPDiscretizer) String() string {
	if !d.IsFitted() {
		return fmt.Sprintf("MDLPDiscretizer(criterion=%s, min_interval_size=%d, min_depth=%d)",
			d.Criterion, d.MinIntervalSize, d.MinDepth)
	}
	return fmt.Sprintf("MDLPDiscretizer(criterion=%s, min_interval_size=%d, min_depth=%d, n_features=%d)",
		d.Criterion, d.MinIntervalSize, d.MinDepth, d.NFeaturesIn)
}

func (d *MDLPDiscretizer) reset() {
	d.Reset()
	d.Cuts = nil
	d.Columns = nil
	d.ClassValues = nil
}

func (d *MDLPDiscretizer) log() log.Logger {
	if d.logger != nil {
		return d.logger
	}
	return log.GetLoggerWithName("preprocessing.mdlp")
}

func (d *MDLPDiscretizer) validateParams() error {
	if d.MinIntervalSize < 2 {
		return errors.NewValidationError("min_interval_size", "must be at least 2", d.MinIntervalSize)
	}
	if d.MinDepth < 0 {
		return errors.NewValidationError("min_depth", "must be non-negative", d.MinDepth)
	}
	if d.Criterion.String() == "unknown" {
		return errors.NewValidationError("criterion", "unknown criterion", int(d.Criterion))
	}
	if d.CutPlacement.String() == "unknown" {
		return errors.NewValidationError("cut_placement", "unknown placement", int(d.CutPlacement))
	}
	if d.MissingPolicy.String() == "unknown" {
		return errors.NewValidationError("missing_value_policy", "unknown policy", int(d.MissingPolicy))
	}
	return nil
}

// resolveColumns returns the sorted, deduplicated columns to discretize.
func (d *MDLPDiscretizer) resolveColumns(op string, nCols int) ([]int, error) {
	if d.ContinuousColumns == nil {
		cols := make([]int, nCols)
		for j := range cols {
			cols[j] = j
		}
		return cols, nil
	}
	cols := slices.Clone(d.ContinuousColumns)
	for _, j := range cols {
		if j < 0 || j >= nCols {
			return nil, errors.NewInvalidInputErrorf(op, "column %d out of range [0, %d)", j, nCols)
		}
	}
	slices.Sort(cols)
	return slices.Compact(cols), nil
}

// labelColumn flattens an n×1 or 1×n label matrix.
func labelColumn(op string, y mat.Matrix) ([]float64, error) {
	r, c := y.Dims()
	switch {
	case c == 1:
		out := make([]float64, r)
		for i := range out {
			out[i] = y.At(i, 0)
		}
		return out, nil
	case r == 1:
		out := make([]float64, c)
		for i := range out {
			out[i] = y.At(0, i)
		}
		return out, nil
	default:
		return nil, errors.NewInvalidInputErrorf(op, "y must be a single column or row, got %d×%d", r, c)
	}
}

// encodeLabels maps class values to dense ids in ascending class order.
func encodeLabels(op string, labels []float64) ([]int, []float64, error) {
	seen := make(map[float64]struct{})
	for i, v := range labels {
		if !errors.IsFinite(v) {
			return nil, nil, errors.NewInvalidInputErrorf(op, "non-finite label %v at row %d", v, i)
		}
		seen[v] = struct{}{}
	}
	classes := slices.Sorted(maps.Keys(seen))

	ids := make([]int, len(labels))
	for i, v := range labels {
		ids[i] = sort.SearchFloat64s(classes, v)
	}
	return ids, classes, nil
}

func toInt(key string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, errors.NewValidationError(key, "must be an integer", value)
}

func toColumns(key string, value interface{}) ([]int, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "all" {
			return nil, nil
		}
	case []int:
		return slices.Clone(v), nil
	case []interface{}:
		cols := make([]int, len(v))
		for i, x := range v {
			n, err := toInt(key, x)
			if err != nil {
				return nil, err
			}
			cols[i] = n
		}
		return cols, nil
	}
	return nil, errors.NewValidationError(key, `must be "all" or a list of column indices`, value)
}

func parseParam[T any](key string, value interface{}, parse func(string) (T, error)) (T, error) {
	switch v := value.(type) {
	case string:
		return parse(v)
	case T:
		return v, nil
	}
	var zero T
	return zero, errors.NewValidationError(key, "must be a string", value)
}
