package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Josemvg/josemltools/pkg/errors"
)

// maxShapiroN を超えるサンプル数ではp値の近似精度が保証されない
// (scipyのshapiroも同じ閾値で警告して計算は続行する)
const maxShapiroN = 5000

// ShapiroResult はShapiro-Wilk正規性検定の結果を表す
type ShapiroResult struct {
	// W は検定統計量（1に近いほど正規分布に近い）
	W float64
	// PValue は帰無仮説「データは正規分布に従う」の下でのp値
	PValue float64
	// N は検定に使われたサンプル数（欠損値を除外した後）
	N int
}

// LooksGaussian は有意水準alphaで帰無仮説が棄却されないかどうかを返す
func (r ShapiroResult) LooksGaussian(alpha float64) bool {
	return r.PValue > alpha
}

// ShapiroWilk はShapiro-Wilk検定を実行する
//
// 実装はRoystonのAS R94近似に基づく:
//   - 正規順序統計量の期待値 m_i = Φ⁻¹((i - 3/8)/(n + 1/4)) から重みを構成
//   - 末端の重みを多項式補正（n>5では上位2つ、n<=5では最大のみ）
//   - W = (Σ a_i x_(i))² / Σ(x_i - x̄)²
//   - p値は n=3 で厳密、4<=n<=11 で対数正規近似、n>=12 で正規近似
//
// サンプル数3未満はエラー、5000超はApproximationWarningを発行して続行します。
func ShapiroWilk(x []float64) (ShapiroResult, error) {
	clean := DropMissing(x)
	n := len(clean)
	if n < 3 {
		return ShapiroResult{}, errors.NewInsufficientSamplesError("ShapiroWilk", 3, n)
	}
	if n > maxShapiroN {
		errors.Warn(errors.NewApproximationWarning(
			"ShapiroWilk", "n > 5000", "p-value may not be accurate for large samples"))
	}

	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)

	if sorted[n-1]-sorted[0] == 0 {
		return ShapiroResult{}, errors.NewValueError("ShapiroWilk", "all values are identical (zero range)")
	}

	// 正規順序統計量の近似値
	m := make([]float64, n)
	var ssumm2 float64
	for i := 0; i < n; i++ {
		p := (float64(i+1) - 0.375) / (float64(n) + 0.25)
		m[i] = distuv.UnitNormal.Quantile(p)
		ssumm2 += m[i] * m[i]
	}

	// 重みベクトル a の構成
	a := make([]float64, n)
	rsn := 1 / math.Sqrt(float64(n))
	normM := math.Sqrt(ssumm2)

	if n == 3 {
		a[2] = math.Sqrt(0.5)
		a[0] = -a[2]
	} else {
		an := -2.706056*pow5(rsn) + 4.434685*pow4(rsn) - 2.071190*pow3(rsn) -
			0.147981*rsn*rsn + 0.221157*rsn + m[n-1]/normM

		var phi float64
		i1 := 1 // 補正しない重みの開始インデックス（0始まり）
		if n > 5 {
			an1 := -3.582633*pow5(rsn) + 5.682633*pow4(rsn) - 1.752461*pow3(rsn) -
				0.293762*rsn*rsn + 0.042981*rsn + m[n-2]/normM
			phi = (ssumm2 - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) /
				(1 - 2*an*an - 2*an1*an1)
			a[n-1], a[n-2] = an, an1
			a[0], a[1] = -an, -an1
			i1 = 2
		} else {
			phi = (ssumm2 - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
			a[n-1] = an
			a[0] = -an
		}

		sqrtPhi := math.Sqrt(phi)
		for i := i1; i < n-i1; i++ {
			a[i] = m[i] / sqrtPhi
		}
	}

	// W統計量
	mean := meanOf(sorted)
	var num, den float64
	for i, v := range sorted {
		num += a[i] * v
		d := v - mean
		den += d * d
	}
	w := num * num / den
	if w > 1 {
		w = 1 // 数値誤差のクリップ
	}

	p := shapiroPValue(w, n)
	return ShapiroResult{W: w, PValue: p, N: n}, nil
}

// shapiroPValue はW統計量からp値を近似する
func shapiroPValue(w float64, n int) float64 {
	switch {
	case n == 3:
		// n=3 は厳密な分布が既知
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return clamp01(p)
	case n <= 11:
		fn := float64(n)
		g := -2.273 + 0.459*fn
		lw := -math.Log(g - math.Log(1-w))
		mu := 0.5440 - 0.39978*fn + 0.025054*fn*fn - 0.0006714*fn*fn*fn
		sigma := math.Exp(1.3822 - 0.77857*fn + 0.062767*fn*fn - 0.0020322*fn*fn*fn)
		return clamp01(distuv.UnitNormal.Survival((lw - mu) / sigma))
	default:
		ln := math.Log(float64(n))
		lw := math.Log(1 - w)
		mu := -1.5861 - 0.31082*ln - 0.083751*ln*ln + 0.0038915*ln*ln*ln
		sigma := math.Exp(-0.4803 - 0.082676*ln + 0.0030302*ln*ln)
		return clamp01(distuv.UnitNormal.Survival((lw - mu) / sigma))
	}
}

// NormalOrderPositions はQQプロット用の理論分位点を返す
// 位置はFilliben型の (i - 3/8)/(n + 1/4)（scipyのprobplotと同系）
func NormalOrderPositions(n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		p := (float64(i+1) - 0.375) / (float64(n) + 0.25)
		out[i] = distuv.UnitNormal.Quantile(p)
	}
	return out
}

func meanOf(sorted []float64) float64 {
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func pow3(x float64) float64 { return x * x * x }
func pow4(x float64) float64 { return x * x * x * x }
func pow5(x float64) float64 { return x * x * x * x * x }
