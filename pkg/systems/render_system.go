package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
)

// RenderSystem 绘制井内世界：井壁、金币、落石、水桶和粒子
//
// 每帧整屏重绘，不依赖上一帧的像素。绘制顺序与遮挡关系：
// 背景 → 井壁 → 金币 → 落石 → 绳索和水桶 → 粒子
type RenderSystem struct {
	entityManager *ecs.EntityManager
	whitePixel    *ebiten.Image // 1x1 白色图片，缩放旋转后用于绘制落石
}

// NewRenderSystem 创建渲染系统
// 不在构造时创建图片，保证无图形环境下也能构造（测试中只跑模拟）
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Clear 用背景色填充整个画面
func (s *RenderSystem) Clear(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
}

// DrawWorld 绘制完整的井内世界
// capacity 用于计算水桶中金币的填充比例
func (s *RenderSystem) DrawWorld(screen *ebiten.Image, bucketID ecs.EntityID, capacity int) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	s.drawWell(screen, w, h)
	s.drawCoins(screen)
	s.drawObstacles(screen)
	s.drawBucket(screen, bucketID, capacity, w)
	s.drawParticles(screen)
}

func (s *RenderSystem) drawWell(screen *ebiten.Image, w, h float32) {
	for _, id := range ecs.GetEntitiesWith1[*components.WellComponent](s.entityManager) {
		well, _ := ecs.GetComponent[*components.WellComponent](s.entityManager, id)
		wall := float32(well.WallWidth)
		brick := float32(well.BrickHeight)

		vector.DrawFilledRect(screen, 0, 0, wall, h, config.ColorWall, false)
		vector.DrawFilledRect(screen, w-wall, 0, wall, h, config.ColorWall, false)

		offset := float32(BrickPhase(well.ScrollOffset, well.BrickHeight))
		for y := -offset; y < h; y += brick {
			vector.DrawFilledRect(screen, 5, y+5, wall-10, brick-10, config.ColorBrick, false)
			vector.DrawFilledRect(screen, w-wall+5, y+5, wall-10, brick-10, config.ColorBrick, false)
		}
	}

	// 四周渐暗，近似径向暗角
	const bands = 6
	band := float32(12)
	for i := 0; i < bands; i++ {
		inset := float32(i) * band
		alpha := uint8(int(config.ColorVignette.A) * (bands - i) / (bands * 2))
		shade := color.RGBA{A: alpha}
		vector.DrawFilledRect(screen, inset, inset, w-2*inset, band, shade, false)
		vector.DrawFilledRect(screen, inset, h-inset-band, w-2*inset, band, shade, false)
	}
}

func (s *RenderSystem) drawCoins(screen *ebiten.Image) {
	coins := ecs.GetEntitiesWith3[
		*components.CoinComponent,
		*components.PositionComponent,
		*components.SpinComponent,
	](s.entityManager)

	for _, id := range coins {
		coin, _ := ecs.GetComponent[*components.CoinComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.entityManager, id)

		cx, cy, r := float32(pos.X), float32(pos.Y), float32(coin.Radius)
		vector.DrawFilledCircle(screen, cx, cy, r, config.ColorGold, true)
		vector.StrokeCircle(screen, cx, cy, r, 2, config.ColorGoldEdge, true)

		// 高光点随旋转绕中心转动
		sin, cos := math.Sincos(spin.Rotation)
		sx := -4*cos + 4*sin
		sy := -4*sin - 4*cos
		vector.DrawFilledCircle(screen, cx+float32(sx), cy+float32(sy), 3, config.ColorCoinShine, true)
	}
}

func (s *RenderSystem) drawObstacles(screen *ebiten.Image) {
	rocks := ecs.GetEntitiesWith3[
		*components.ObstacleComponent,
		*components.PositionComponent,
		*components.SpinComponent,
	](s.entityManager)

	if len(rocks) == 0 {
		return
	}
	pixel := s.pixel()

	for _, id := range rocks {
		rock, _ := ecs.GetComponent[*components.ObstacleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.entityManager, id)

		// 外框
		s.drawRotatedSquare(screen, pixel, pos.X, pos.Y, rock.Size+4, spin.Rotation, config.ColorRockEdge)
		s.drawRotatedSquare(screen, pixel, pos.X, pos.Y, rock.Size, spin.Rotation, config.ColorRock)
	}
}

func (s *RenderSystem) drawRotatedSquare(screen, pixel *ebiten.Image, x, y, size, rotation float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(size, size)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel, op)
}

func (s *RenderSystem) drawBucket(screen *ebiten.Image, bucketID ecs.EntityID, capacity int, viewW float32) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, bucketID)
	if !ok {
		return
	}
	bucket, ok := ecs.GetComponent[*components.BucketComponent](s.entityManager, bucketID)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	bw, bh := float32(bucket.Width), float32(bucket.Height)

	// 绳索
	vector.StrokeLine(screen, viewW/2, 0, x, y, 4, config.ColorRope, true)

	// 桶身：上宽 w，下宽 2w/3 的梯形，逐行填充
	top, bottom := bw/2, bw/3
	for row := float32(0); row < bh; row += 2 {
		half := top - (top-bottom)*row/bh
		vector.DrawFilledRect(screen, x-half, y+row, half*2, 2, config.ColorBucket, false)
	}
	vector.StrokeLine(screen, x-top, y, x-bottom, y+bh, 2, config.ColorBucketEdge, true)
	vector.StrokeLine(screen, x+top, y, x+bottom, y+bh, 2, config.ColorBucketEdge, true)
	vector.StrokeLine(screen, x-bottom, y+bh, x+bottom, y+bh, 2, config.ColorBucketEdge, true)

	// 桶口
	vector.DrawFilledRect(screen, x-top, y-4, bw, 8, config.ColorBucketEdge, true)

	// 金币填充高度与装载比例成正比
	if bucket.CurrentLoad > 0 && capacity > 0 {
		ratio := math.Min(1, float64(bucket.CurrentLoad)/float64(capacity))
		fill := float32(ratio * 6)
		vector.DrawFilledRect(screen, x-top+5, y+5-fill, bw-10, fill*2, config.ColorGold, true)
	}
}

func (s *RenderSystem) drawParticles(screen *ebiten.Image) {
	particles := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range particles {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if p.Life <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.Size), FadeColor(p.Color, p.Life), true)
	}
}

func (s *RenderSystem) pixel() *ebiten.Image {
	if s.whitePixel == nil {
		s.whitePixel = ebiten.NewImage(1, 1)
		s.whitePixel.Fill(color.White)
	}
	return s.whitePixel
}

// FadeColor 按 alpha ∈ [0,1] 缩放预乘颜色
func FadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
