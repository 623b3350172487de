package components

// ObstacleComponent 标记障碍物（落石）实体
type ObstacleComponent struct {
	Size float64 // 绘制边长（像素）
}
