package entities

import (
	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// NewBucketEntity 创建水桶实体
// 水桶初始位于视口水平中心，y = viewH * YRatio
func NewBucketEntity(em *ecs.EntityManager, tuning *config.Tuning, viewW, viewH float64) ecs.EntityID {
	id := em.CreateEntity()
	b := tuning.Bucket

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: viewW / 2,
		Y: viewH * b.YRatio,
	})
	ecs.AddComponent(em, id, &components.BucketComponent{
		Width:  b.Width,
		Height: b.Height,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: b.Health,
		MaxHealth:     b.Health,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  b.Width,
		Height: tuning.Collision.Tolerance * 2,
	})

	return id
}
