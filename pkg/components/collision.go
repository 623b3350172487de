package components

// CollisionComponent 定义水桶的碰撞判定框
//
// 判定框以实体位置为中心：|dx| < Width/2 且 |dy| < Height/2 即为命中。
// 水桶的 Height 取 2 倍垂直容差，因此判定框与水桶绘制高度无关。
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
