package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// NewObstacleEntity 在视口底部下方创建一块上浮的落石
// 落石比金币快，生成位置规则与金币相同
func NewObstacleEntity(em *ecs.EntityManager, rng *rand.Rand, tuning *config.Tuning, viewW, viewH float64) ecs.EntityID {
	id := em.CreateEntity()
	x, y := spawnPoint(rng, tuning, viewW, viewH)

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VY: -(tuning.Obstacle.MinSpeed + rng.Float64()*tuning.Obstacle.SpeedRange),
	})
	ecs.AddComponent(em, id, &components.SpinComponent{
		Rotation: rng.Float64() * math.Pi,
		Speed:    tuning.Obstacle.RotSpeed,
	})
	ecs.AddComponent(em, id, &components.ObstacleComponent{
		Size: tuning.Obstacle.Size,
	})

	return id
}
