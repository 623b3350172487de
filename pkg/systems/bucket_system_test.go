package systems

import (
	"testing"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
	"github.com/decker502/wishingwell/pkg/entities"
)

func TestPlayableBand(t *testing.T) {
	tests := []struct {
		name    string
		viewW   float64
		wantMin float64
		wantMax float64
	}{
		{name: "default width", viewW: 480, wantMin: 80, wantMax: 400},
		{name: "exact fit", viewW: 160, wantMin: 80, wantMax: 80},
		{name: "too narrow", viewW: 100, wantMin: 50, wantMax: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minX, maxX := PlayableBand(tt.viewW, 60, 50)
			if minX != tt.wantMin || maxX != tt.wantMax {
				t.Errorf("PlayableBand(%v) = [%v, %v], want [%v, %v]",
					tt.viewW, minX, maxX, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestBucketEasesTowardPointer(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	system := NewBucketSystem(em, tuning)
	id := entities.NewBucketEntity(em, tuning, 480, 800)

	system.Update(id, 340, 480)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	// 240 + (340-240)*0.1
	if pos.X < 249.999 || pos.X > 250.001 {
		t.Errorf("bucket x = %v, want 250", pos.X)
	}
}

func TestBucketStaysInBandEveryTick(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	system := NewBucketSystem(em, tuning)
	id := entities.NewBucketEntity(em, tuning, 480, 800)
	rng := newTestRand()

	viewW := 480.0
	for tick := 0; tick < 2000; tick++ {
		// 指针可以跑到视口外
		pointer := rng.Float64()*1200 - 300
		if tick == 1000 {
			viewW = 300 // 中途缩小视口
		}
		system.Update(id, pointer, viewW)

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		minX, maxX := PlayableBand(viewW, 60, 50)
		if pos.X < minX || pos.X > maxX {
			t.Fatalf("tick %d: bucket x = %v outside [%v, %v]", tick, pos.X, minX, maxX)
		}
	}
}

func TestBucketConvergesToClampedTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	system := NewBucketSystem(em, tuning)
	id := entities.NewBucketEntity(em, tuning, 480, 800)

	for i := 0; i < 300; i++ {
		system.Update(id, 10000, 480)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X < 399.9 || pos.X > 400 {
		t.Errorf("bucket x = %v, want ~400 (right edge of band)", pos.X)
	}
}
