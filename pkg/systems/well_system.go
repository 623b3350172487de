package systems

import (
	"math"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// WellSystem 推进井壁滚动偏移
type WellSystem struct {
	entityManager *ecs.EntityManager
}

// NewWellSystem 创建井壁滚动系统
func NewWellSystem(em *ecs.EntityManager) *WellSystem {
	return &WellSystem{entityManager: em}
}

// Update 按 deltaMs * speed 推进所有井壁实体的滚动偏移
// speed 下潜时为正，上升时为负且幅度更大
func (s *WellSystem) Update(deltaMs, speed float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.WellComponent](s.entityManager) {
		well, ok := ecs.GetComponent[*components.WellComponent](s.entityManager, id)
		if !ok {
			continue
		}
		well.ScrollOffset += deltaMs * speed
	}
}

// BrickPhase 返回偏移对砖块高度取模后的非负相位 ∈ [0, brickHeight)
func BrickPhase(offset, brickHeight float64) float64 {
	if brickHeight <= 0 {
		return 0
	}
	return math.Mod(math.Mod(offset, brickHeight)+brickHeight, brickHeight)
}
