package systems

import (
	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
	"github.com/decker502/wishingwell/pkg/utils"
)

// BucketSystem 让水桶跟随指针
//
// 目标 x 先被夹在井壁之间的可玩区域内，水桶每 tick 向目标移动 Smoothing 比例的距离。
// 这是按 tick 的离散插值，在固定 TPS 下等价于原版的逐帧缓动。
type BucketSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.Tuning
}

// NewBucketSystem 创建水桶跟随系统
func NewBucketSystem(em *ecs.EntityManager, tuning *config.Tuning) *BucketSystem {
	return &BucketSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// SetTuning 替换调参配置（热加载）
func (s *BucketSystem) SetTuning(tuning *config.Tuning) {
	s.tuning = tuning
}

// Update 将水桶 bucketID 向 pointerX 缓动一步
func (s *BucketSystem) Update(bucketID ecs.EntityID, pointerX, viewW float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, bucketID)
	if !ok {
		return
	}
	bucket, ok := ecs.GetComponent[*components.BucketComponent](s.entityManager, bucketID)
	if !ok {
		return
	}

	minX, maxX := PlayableBand(viewW, bucket.Width, s.tuning.Bucket.WallMargin)
	targetX := utils.Clamp(pointerX, minX, maxX)
	pos.X = utils.Lerp(pos.X, targetX, s.tuning.Bucket.Smoothing)

	// 视口缩小后旧位置可能落在带外，直接拉回
	pos.X = utils.Clamp(pos.X, minX, maxX)
}

// PlayableBand 返回水桶中心允许的 x 范围 [margin + w/2, viewW - margin - w/2]
// 视口窄到范围为空时，两端都退化为视口中心
func PlayableBand(viewW, bucketWidth, margin float64) (float64, float64) {
	minX := margin + bucketWidth/2
	maxX := viewW - margin - bucketWidth/2
	if minX > maxX {
		return viewW / 2, viewW / 2
	}
	return minX, maxX
}
