package systems

import (
	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// FallerSystem 推进金币和落石的位置与旋转
//
// 位移是"每 tick"的量，与 deltaTime 无关：ebiten 以固定 TPS 调用 Update，
// 所以每 tick 位移即是确定的速度。物体越过视口顶部（y < CullY）后被标记删除。
type FallerSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
}

// NewFallerSystem 创建上浮物体移动系统
func NewFallerSystem(em *ecs.EntityManager, tuning *config.Tuning) *FallerSystem {
	return &FallerSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// SetTuning 替换调参配置（热加载）
func (s *FallerSystem) SetTuning(tuning *config.Tuning) {
	s.tuning = tuning
}

// Update 推进一个 tick
func (s *FallerSystem) Update() {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.SpinComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}
		spin, ok := ecs.GetComponent[*components.SpinComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += vel.VX
		pos.Y += vel.VY
		spin.Rotation += spin.Speed

		if pos.Y < s.tuning.Spawn.CullY {
			s.entityManager.DestroyEntity(id)
		}
	}
}
