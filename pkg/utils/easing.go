package utils

import "math"

// 插值与缓动
//
// 所有缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 内
// lo > hi 时返回 lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于结算面板淡入）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}
