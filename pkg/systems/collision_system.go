package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
	"github.com/decker502/wishingwell/pkg/entities"
)

// CollisionResult 汇总一个 tick 内的碰撞结算
type CollisionResult struct {
	CoinsCollected int  // 被装入水桶的金币数
	ScoreGained    int  // 本 tick 增加的分数
	ObstaclesHit   int  // 命中水桶的落石数
	BucketLost     bool // 水桶生命降到 0
}

// CollisionSystem 结算水桶与金币、落石之间的碰撞
//
// 判定是粗略的轴对齐盒检测（见 CheckCollision），比真实形状宽松，这是有意的手感。
// 先结算全部金币，再结算落石；水桶生命归零后本 tick 不再结算剩余落石。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	tuning        *config.Tuning
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, rng *rand.Rand, tuning *config.Tuning) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		rng:           rng,
		tuning:        tuning,
	}
}

// SetTuning 替换调参配置（热加载）
func (s *CollisionSystem) SetTuning(tuning *config.Tuning) {
	s.tuning = tuning
}

// CheckCollision 判断物体是否落在水桶判定框内
// 命中条件：|dx| < box.Width/2 且 |dy| < box.Height/2（严格小于）
func CheckCollision(bucket *components.PositionComponent, box *components.CollisionComponent, obj *components.PositionComponent) bool {
	dx := obj.X - bucket.X
	dy := obj.Y - bucket.Y
	return math.Abs(dx) < box.Width/2 && math.Abs(dy) < box.Height/2
}

// Update 结算水桶 bucketID 的碰撞
//
// capacity 是当前商店容量：CurrentLoad < capacity 时金币才会被装入，
// 装满后金币直接穿过（不删除、不加分、不喷粒子）。
func (s *CollisionSystem) Update(bucketID ecs.EntityID, capacity int) CollisionResult {
	var result CollisionResult

	bucketPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, bucketID)
	if !ok {
		return result
	}
	box, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, bucketID)
	if !ok {
		return result
	}
	bucket, ok := ecs.GetComponent[*components.BucketComponent](s.entityManager, bucketID)
	if !ok {
		return result
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, bucketID)
	if !ok {
		return result
	}

	coins := ecs.GetEntitiesWith2[*components.CoinComponent, *components.PositionComponent](s.entityManager)
	for _, id := range coins {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !CheckCollision(bucketPos, box, pos) {
			continue
		}
		if bucket.CurrentLoad >= capacity {
			continue
		}

		coin, _ := ecs.GetComponent[*components.CoinComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)
		bucket.CurrentLoad++
		result.CoinsCollected++
		result.ScoreGained += coin.Value
		entities.NewParticleBurst(s.entityManager, s.rng, s.tuning, pos.X, pos.Y, config.ColorGold)
	}

	obstacles := ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range obstacles {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !CheckCollision(bucketPos, box, pos) {
			continue
		}

		s.entityManager.DestroyEntity(id)
		health.CurrentHealth--
		result.ObstaclesHit++
		entities.NewParticleBurst(s.entityManager, s.rng, s.tuning, pos.X, pos.Y, config.ColorRock)

		if health.CurrentHealth <= 0 {
			result.BucketLost = true
			break
		}
	}

	return result
}
