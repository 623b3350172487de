package systems

import (
	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// ParticleSystem 推进装饰粒子并回收寿命耗尽的粒子
// 粒子的位移与衰减都是每 tick 的量
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 推进所有粒子一个 tick，Life <= 0 的粒子被标记删除
func (ps *ParticleSystem) Update() {
	particles := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](ps.entityManager)

	for _, id := range particles {
		p, ok := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)
		if !ok {
			continue
		}

		pos.X += p.VX
		pos.Y += p.VY
		p.Life -= p.Decay

		if p.Life <= 0 {
			ps.entityManager.DestroyEntity(id)
		}
	}
}
