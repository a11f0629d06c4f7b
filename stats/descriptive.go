// Package stats はカラム単位の記述統計量を提供します。
// 欠損値(NaN)はpandasのskipnaデフォルトと同様に計算前に除外されます。
// 分位点はpandasの線形補間方式（ランク (n-1)p）に一致させています。
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Josemvg/josemltools/pkg/errors"
)

// DropMissing はNaNを除外した値のコピーを返します。
func DropMissing(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean は算術平均を計算する
func Mean(x []float64) (float64, error) {
	clean := DropMissing(x)
	if len(clean) == 0 {
		return 0, errors.NewEmptyDataError("Mean", "no non-missing values")
	}
	return stat.Mean(clean, nil), nil
}

// Median は中央値を計算する
func Median(x []float64) (float64, error) {
	return Quantile(x, 0.5)
}

// StdDev は標本標準偏差（n-1で割る）を計算する
func StdDev(x []float64) (float64, error) {
	clean := DropMissing(x)
	if len(clean) < 2 {
		return 0, errors.NewInsufficientSamplesError("StdDev", 2, len(clean))
	}
	return stat.StdDev(clean, nil), nil
}

// Mode は最頻値を計算する
// 同数の値が複数ある場合は最小の値を返す（pandasのmode()[0]と同じ挙動）
func Mode(x []float64) (float64, error) {
	clean := DropMissing(x)
	if len(clean) == 0 {
		return 0, errors.NewEmptyDataError("Mode", "no non-missing values")
	}
	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)

	// 昇順の並びを連続区間として走査する。同数の最頻値が複数ある場合は
	// 先に現れた区間、すなわち最小の値が採用される
	mode := sorted[0]
	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
			mode = sorted[i]
		}
	}
	return mode, nil
}

// Quantile はpandasの線形補間方式で分位点を計算する
// ソート済みデータのランク h = (n-1)p の前後の値を線形補間する
func Quantile(x []float64, p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.NewValueError("Quantile", "p must be in [0, 1]")
	}
	clean := DropMissing(x)
	if len(clean) == 0 {
		return 0, errors.NewEmptyDataError("Quantile", "no non-missing values")
	}

	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}

// Quartiles は四分位数をまとめて保持する
type Quartiles struct {
	Q1 float64
	Q2 float64
	Q3 float64
}

// ComputeQuartiles はQ1/Q2/Q3を一度のソートで計算する
func ComputeQuartiles(x []float64) (Quartiles, error) {
	clean := DropMissing(x)
	if len(clean) == 0 {
		return Quartiles{}, errors.NewEmptyDataError("ComputeQuartiles", "no non-missing values")
	}
	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)

	q := Quartiles{}
	for i, p := range []float64{0.25, 0.5, 0.75} {
		h := float64(len(sorted)-1) * p
		lo := int(math.Floor(h))
		var v float64
		if lo >= len(sorted)-1 {
			v = sorted[len(sorted)-1]
		} else {
			v = sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
		}
		switch i {
		case 0:
			q.Q1 = v
		case 1:
			q.Q2 = v
		case 2:
			q.Q3 = v
		}
	}
	return q, nil
}

// IQR は四分位範囲を返す
func (q Quartiles) IQR() float64 {
	return q.Q3 - q.Q1
}
