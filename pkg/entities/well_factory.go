package entities

import (
	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// NewWellEntity 创建井壁背景实体，滚动偏移从 0 开始
func NewWellEntity(em *ecs.EntityManager, tuning *config.Tuning) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WellComponent{
		WallWidth:   tuning.Well.WallWidth,
		BrickHeight: tuning.Well.BrickHeight,
	})
	return id
}
