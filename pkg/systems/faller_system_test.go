package systems

import (
	"testing"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

func TestFallerMovesExactlyBySpeedPerTick(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFallerSystem(em, config.DefaultTuning())

	coin := addCoinAt(em, 200, 850, -3.5)
	rock := addObstacleAt(em, 100, 850, -4)

	for tick := 1; tick <= 10; tick++ {
		system.Update()

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, coin)
		if want := 850 - 3.5*float64(tick); pos.Y != want {
			t.Fatalf("tick %d: coin y = %v, want %v", tick, pos.Y, want)
		}
		pos, _ = ecs.GetComponent[*components.PositionComponent](em, rock)
		if want := 850 - 4*float64(tick); pos.Y != want {
			t.Fatalf("tick %d: rock y = %v, want %v", tick, pos.Y, want)
		}
	}

	spin, _ := ecs.GetComponent[*components.SpinComponent](em, rock)
	if spin.Rotation < 0.49 || spin.Rotation > 0.51 {
		t.Errorf("rock rotation = %v, want ~0.5 after 10 ticks", spin.Rotation)
	}
}

func TestFallerCulledOnlyAboveCullLine(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFallerSystem(em, config.DefaultTuning())

	// -48 - 2 = -50：正好在线上，不删除
	onLine := addCoinAt(em, 200, -48, -2)
	// -49 - 2 = -51：越线，删除
	past := addCoinAt(em, 200, -49, -2)

	system.Update()

	if em.IsMarkedForDestruction(onLine) {
		t.Error("entity at y == -50 must not be culled")
	}
	if !em.IsMarkedForDestruction(past) {
		t.Error("entity at y < -50 should be culled")
	}

	em.RemoveMarkedEntities()
	if em.Exists(past) {
		t.Error("culled entity should be gone after sweep")
	}
}

func TestFallerIgnoresParticles(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFallerSystem(em, config.DefaultTuning())

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 10, Y: -100})
	ecs.AddComponent(em, id, &components.ParticleComponent{Life: 1})

	system.Update()

	if em.IsMarkedForDestruction(id) {
		t.Error("particles are not managed by FallerSystem")
	}
}
