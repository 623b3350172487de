package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
	"github.com/decker502/wishingwell/pkg/entities"
)

// SpawnSystem 管理金币与落石的定时生成
//
// 两个计时器各自累加 deltaMs，严格超过间隔时生成一个实体并把计时器清零（不保留余量）。
// 只应在 PLAYING 状态调用。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	tuning        *config.Tuning
	coinTimer     float64
	obstacleTimer float64
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, rng *rand.Rand, tuning *config.Tuning) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		rng:           rng,
		tuning:        tuning,
	}
}

// SetTuning 替换调参配置（热加载）
func (s *SpawnSystem) SetTuning(tuning *config.Tuning) {
	s.tuning = tuning
}

// Reset 清零计时器（新一局开始时调用）
func (s *SpawnSystem) Reset() {
	s.coinTimer = 0
	s.obstacleTimer = 0
}

// Timers 返回当前金币与落石计时器（毫秒）
func (s *SpawnSystem) Timers() (coin, obstacle float64) {
	return s.coinTimer, s.obstacleTimer
}

// Update 推进计时器，必要时在视口底部下方生成实体
func (s *SpawnSystem) Update(deltaMs, viewW, viewH float64) {
	s.coinTimer += deltaMs
	if s.coinTimer > s.tuning.Coin.SpawnInterval {
		id := entities.NewCoinEntity(s.entityManager, s.rng, s.tuning, viewW, viewH)
		s.coinTimer = 0
		log.Printf("[SpawnSystem] Spawned coin %d", id)
	}

	s.obstacleTimer += deltaMs
	if s.obstacleTimer > s.tuning.Obstacle.SpawnInterval {
		id := entities.NewObstacleEntity(s.entityManager, s.rng, s.tuning, viewW, viewH)
		s.obstacleTimer = 0
		log.Printf("[SpawnSystem] Spawned obstacle %d", id)
	}
}
