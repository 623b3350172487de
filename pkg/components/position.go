package components

// PositionComponent 存储实体在屏幕坐标系中的位置（像素）
// 金币、障碍物、粒子以其中心点为位置；水桶以桶口中心为位置
type PositionComponent struct {
	X float64
	Y float64
}
