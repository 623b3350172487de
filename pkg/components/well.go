package components

// WellComponent 井壁背景的滚动状态
// ScrollOffset 随深度变化而增减，渲染时按砖块高度取模
type WellComponent struct {
	ScrollOffset float64
	WallWidth    float64
	BrickHeight  float64
}
