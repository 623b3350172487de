package components

// BucketComponent 玩家控制的水桶
//
// 每局开始时重新创建。CurrentLoad 的上限是商店容量，由碰撞系统在收集时检查。
type BucketComponent struct {
	Width       float64
	Height      float64
	CurrentLoad int
}
