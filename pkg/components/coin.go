package components

// CoinComponent 标记金币实体
type CoinComponent struct {
	Value  int     // 收集后增加的分数
	Radius float64 // 绘制半径（像素）
}
