package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// NewCoinEntity 在视口底部下方创建一枚上浮的金币
// 参数:
//   - em: EntityManager 实例
//   - rng: 随机源
//   - tuning: 调参配置
//   - viewW, viewH: 当前视口尺寸
//
// 返回: 创建的实体ID
func NewCoinEntity(em *ecs.EntityManager, rng *rand.Rand, tuning *config.Tuning, viewW, viewH float64) ecs.EntityID {
	id := em.CreateEntity()
	x, y := spawnPoint(rng, tuning, viewW, viewH)

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VY: -(tuning.Coin.MinSpeed + rng.Float64()*tuning.Coin.SpeedRange),
	})
	ecs.AddComponent(em, id, &components.SpinComponent{
		Rotation: rng.Float64() * math.Pi,
		Speed:    tuning.Coin.RotSpeed,
	})
	ecs.AddComponent(em, id, &components.CoinComponent{
		Value:  tuning.Coin.Value,
		Radius: tuning.Coin.Size,
	})

	return id
}

// spawnPoint 生成点：x ∈ [EdgeMargin, W-EdgeMargin)，y 在视口底部下方
// 视口过窄时退化为水平居中
func spawnPoint(rng *rand.Rand, tuning *config.Tuning, viewW, viewH float64) (float64, float64) {
	span := viewW - 2*tuning.Spawn.EdgeMargin
	x := viewW / 2
	if span > 0 {
		x = rng.Float64()*span + tuning.Spawn.EdgeMargin
	}
	return x, viewH + tuning.Spawn.BottomOffset
}
