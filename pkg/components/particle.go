package components

import "image/color"

// ParticleComponent 碰撞时喷出的装饰粒子
//
// Life 从 1 开始每 tick 减去 Decay，<= 0 时粒子被移除；绘制透明度即 Life。
// 位置由同一实体上的 PositionComponent 保存。
type ParticleComponent struct {
	VX    float64
	VY    float64
	Life  float64
	Decay float64
	Size  float64
	Color color.RGBA
}
