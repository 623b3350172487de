package systems

import (
	"testing"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
	"github.com/decker502/wishingwell/pkg/entities"
)

// newCollisionFixture 创建一个位于 (240, 160) 的水桶
func newCollisionFixture(t *testing.T) (*ecs.EntityManager, *CollisionSystem, ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	system := NewCollisionSystem(em, newTestRand(), tuning)
	bucket := entities.NewBucketEntity(em, tuning, 480, 800)
	return em, system, bucket
}

func TestCheckCollision(t *testing.T) {
	bucket := &components.PositionComponent{X: 240, Y: 160}
	box := &components.CollisionComponent{Width: 60, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "center", x: 240, y: 160, want: true},
		{name: "inside horizontal edge", x: 269.9, y: 160, want: true},
		{name: "on horizontal edge", x: 270, y: 160, want: false},
		{name: "inside vertical tolerance", x: 240, y: 184.9, want: true},
		{name: "on vertical tolerance", x: 240, y: 185, want: false},
		{name: "above", x: 240, y: 134, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := &components.PositionComponent{X: tt.x, Y: tt.y}
			if got := CheckCollision(bucket, box, obj); got != tt.want {
				t.Errorf("CheckCollision(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCoinCollectedBelowCapacity(t *testing.T) {
	em, system, bucketID := newCollisionFixture(t)
	bucket, _ := ecs.GetComponent[*components.BucketComponent](em, bucketID)
	bucket.CurrentLoad = 9

	coin := addCoinAt(em, 240, 160, -2)
	result := system.Update(bucketID, 10)

	if result.CoinsCollected != 1 || result.ScoreGained != 10 {
		t.Errorf("result = %+v, want 1 coin / 10 score", result)
	}
	if bucket.CurrentLoad != 10 {
		t.Errorf("load = %d, want 10", bucket.CurrentLoad)
	}
	if !em.IsMarkedForDestruction(coin) {
		t.Error("collected coin should be marked")
	}
	if n := ecs.CountWith1[*components.ParticleComponent](em); n != 8 {
		t.Errorf("particles = %d, want 8", n)
	}
}

func TestCoinPassesThroughFullBucket(t *testing.T) {
	em, system, bucketID := newCollisionFixture(t)
	bucket, _ := ecs.GetComponent[*components.BucketComponent](em, bucketID)
	bucket.CurrentLoad = 10

	coin := addCoinAt(em, 240, 160, -2)
	result := system.Update(bucketID, 10)

	if result.CoinsCollected != 0 || result.ScoreGained != 0 {
		t.Errorf("result = %+v, want nothing collected", result)
	}
	if bucket.CurrentLoad != 10 {
		t.Errorf("load = %d, want 10", bucket.CurrentLoad)
	}
	if em.IsMarkedForDestruction(coin) {
		t.Error("coin must pass through a full bucket")
	}
	if n := ecs.CountWith1[*components.ParticleComponent](em); n != 0 {
		t.Errorf("particles = %d, want 0", n)
	}
}

func TestCoinsFillBucketWithinOneTick(t *testing.T) {
	em, system, bucketID := newCollisionFixture(t)
	bucket, _ := ecs.GetComponent[*components.BucketComponent](em, bucketID)
	bucket.CurrentLoad = 8

	first := addCoinAt(em, 240, 160, -2)
	second := addCoinAt(em, 245, 160, -2)
	third := addCoinAt(em, 235, 160, -2)

	result := system.Update(bucketID, 10)

	if result.CoinsCollected != 2 {
		t.Errorf("collected = %d, want 2", result.CoinsCollected)
	}
	if !em.IsMarkedForDestruction(first) || !em.IsMarkedForDestruction(second) {
		t.Error("first two coins should be collected in spawn order")
	}
	if em.IsMarkedForDestruction(third) {
		t.Error("third coin should pass through once the bucket is full")
	}
}

func TestObstacleHitDecrementsHealth(t *testing.T) {
	em, system, bucketID := newCollisionFixture(t)

	rock := addObstacleAt(em, 250, 170, -3)
	miss := addObstacleAt(em, 400, 160, -3)

	result := system.Update(bucketID, 10)

	health, _ := ecs.GetComponent[*components.HealthComponent](em, bucketID)
	if health.CurrentHealth != 2 {
		t.Errorf("health = %d, want 2", health.CurrentHealth)
	}
	if result.ObstaclesHit != 1 || result.BucketLost {
		t.Errorf("result = %+v, want 1 hit, bucket alive", result)
	}
	if !em.IsMarkedForDestruction(rock) {
		t.Error("hit obstacle should be marked")
	}
	if em.IsMarkedForDestruction(miss) {
		t.Error("missed obstacle should survive")
	}
}

func TestThirdObstacleLosesBucketAndStops(t *testing.T) {
	em, system, bucketID := newCollisionFixture(t)

	ids := []ecs.EntityID{
		addObstacleAt(em, 240, 160, -3),
		addObstacleAt(em, 240, 161, -3),
		addObstacleAt(em, 240, 162, -3),
		addObstacleAt(em, 240, 163, -3),
	}

	result := system.Update(bucketID, 10)

	if !result.BucketLost {
		t.Fatal("bucket should be lost after three hits")
	}
	if result.ObstaclesHit != 3 {
		t.Errorf("hits = %d, want 3", result.ObstaclesHit)
	}
	if em.IsMarkedForDestruction(ids[3]) {
		t.Error("no obstacle should be resolved after the bucket is lost")
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](em, bucketID)
	if health.CurrentHealth != 0 {
		t.Errorf("health = %d, want 0", health.CurrentHealth)
	}
}

func TestCollisionSkipsMarkedEntities(t *testing.T) {
	em, system, bucketID := newCollisionFixture(t)

	coin := addCoinAt(em, 240, 160, -2)
	em.DestroyEntity(coin)

	result := system.Update(bucketID, 10)
	if result.CoinsCollected != 0 {
		t.Errorf("collected = %d, want 0 for a marked coin", result.CoinsCollected)
	}
}

func TestCollisionWithoutBucket(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCollisionSystem(em, newTestRand(), config.DefaultTuning())
	addCoinAt(em, 240, 160, -2)

	if result := system.Update(ecs.EntityID(99), 10); result != (CollisionResult{}) {
		t.Errorf("result = %+v, want zero value", result)
	}
}
