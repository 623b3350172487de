package systems

import (
	"math/rand"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/ecs"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

// addCoinAt 在指定位置放置一枚金币，vy 为每 tick 位移
func addCoinAt(em *ecs.EntityManager, x, y, vy float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VY: vy})
	ecs.AddComponent(em, id, &components.SpinComponent{Speed: 0.1})
	ecs.AddComponent(em, id, &components.CoinComponent{Value: 10, Radius: 12})
	return id
}

func addObstacleAt(em *ecs.EntityManager, x, y, vy float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VY: vy})
	ecs.AddComponent(em, id, &components.SpinComponent{Speed: 0.05})
	ecs.AddComponent(em, id, &components.ObstacleComponent{Size: 25})
	return id
}
