package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Josemvg/josemltools/pkg/errors"
)

// SkewClass は歪度の解釈カテゴリを表す
type SkewClass int

const (
	// SkewSymmetric はほぼ対称な分布（|g1| <= 0.5）
	SkewSymmetric SkewClass = iota
	// SkewModerate は中程度に歪んだ分布（0.5 < |g1| <= 1）
	SkewModerate
	// SkewHigh は強く歪んだ分布（|g1| > 1）
	SkewHigh
)

// String は解釈カテゴリの表示名を返す
func (c SkewClass) String() string {
	switch c {
	case SkewSymmetric:
		return "approximately symmetric"
	case SkewModerate:
		return "moderately skewed"
	case SkewHigh:
		return "highly skewed"
	default:
		return "unknown"
	}
}

// Skewness は調整済みFisher-Pearson歪度（pandasの.skew()と同じ定義）を計算する
func Skewness(x []float64) (float64, error) {
	clean := DropMissing(x)
	if len(clean) < 3 {
		return 0, errors.NewInsufficientSamplesError("Skewness", 3, len(clean))
	}
	return stat.Skew(clean, nil), nil
}

// ClassifySkew は歪度を解釈カテゴリに変換する
// 境界の扱いは従来の判定式に合わせている:
// 中程度は -1 <= g1 < -0.5 または 0.5 < g1 <= 1、強い歪みは |g1| > 1
func ClassifySkew(g1 float64) SkewClass {
	if g1 < -1 || g1 > 1 {
		return SkewHigh
	}
	if (g1 >= -1 && g1 < -0.5) || (g1 > 0.5 && g1 <= 1) {
		return SkewModerate
	}
	return SkewSymmetric
}
