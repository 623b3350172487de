package components

// VelocityComponent 存储实体每个 tick 的位移（像素/tick）
// VY 为负表示向屏幕上方移动
type VelocityComponent struct {
	VX float64
	VY float64
}
