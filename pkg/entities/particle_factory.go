package entities

import (
	"image/color"
	"math/rand"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// NewParticleBurst 在 (x, y) 处喷出一组粒子
//
// 数量、速度、大小和衰减由 tuning.Particles 决定。
// 返回: 创建的粒子实体ID列表
func NewParticleBurst(em *ecs.EntityManager, rng *rand.Rand, tuning *config.Tuning, x, y float64, clr color.RGBA) []ecs.EntityID {
	p := tuning.Particles
	ids := make([]ecs.EntityID, 0, p.Burst)

	for i := 0; i < p.Burst; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, id, &components.ParticleComponent{
			VX:    rng.Float64()*2*p.MaxSpeed - p.MaxSpeed,
			VY:    rng.Float64()*2*p.MaxSpeed - p.MaxSpeed,
			Life:  1.0,
			Decay: rng.Float64()*p.DecayRange + p.MinDecay,
			Size:  rng.Float64()*p.SizeRange + p.MinSize,
			Color: clr,
		})
		ids = append(ids, id)
	}

	return ids
}
