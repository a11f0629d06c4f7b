package stats

import "math"

// DefaultFenceMultiplier はTukeyの外れ値判定で使う標準の係数です。
const DefaultFenceMultiplier = 1.5

// Fences は外れ値判定の下限・上限を表す
type Fences struct {
	Lower float64
	Upper float64
}

// TukeyFences は四分位範囲に基づく外れ値の境界を計算する
// lower = Q1 - k*IQR, upper = Q3 + k*IQR
func TukeyFences(q Quartiles, k float64) Fences {
	iqr := q.IQR()
	return Fences{
		Lower: q.Q1 - k*iqr,
		Upper: q.Q3 + k*iqr,
	}
}

// IsOutlier は値が境界の外にあるかどうかを判定する
// 欠損値(NaN)は外れ値として扱わない
func (f Fences) IsOutlier(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return v < f.Lower || v > f.Upper
}

// CountOutliers は境界の外にある値の数を上下別に数える
func CountOutliers(x []float64, f Fences) (high, low int) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if v > f.Upper {
			high++
		} else if v < f.Lower {
			low++
		}
	}
	return high, low
}

// RoundPercent は全体に対する割合をパーセントで返す（小数点以下2桁に丸める）
func RoundPercent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*100/float64(total)*100) / 100
}
