package components

// SpinComponent 存储实体的旋转角度与每 tick 的旋转增量（弧度）
type SpinComponent struct {
	Rotation float64
	Speed    float64
}
