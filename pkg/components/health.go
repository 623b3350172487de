package components

// HealthComponent 存储水桶的生命值
// 每次被落石击中减 1，降到 0 时本局失败
type HealthComponent struct {
	CurrentHealth int
	MaxHealth     int
}
