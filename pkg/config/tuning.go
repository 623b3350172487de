package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning 玩法调参配置
//
// 所有时间相关字段单位为毫秒（ms），与每帧传入的 deltaMs 一致；
// 速度类字段（Speed、RotSpeed、粒子速度）是"每 tick"的量，不乘以 delta。
//
// 配置文件位置: data/tuning.yaml
// YAML 中缺失的键保留 DefaultTuning() 的值。
type Tuning struct {
	// MaxFrameDelta 单帧 delta 上限（毫秒），防止窗口挂起后一次性推进过多
	MaxFrameDelta float64 `yaml:"maxFrameDelta"`

	Depth     DepthTuning     `yaml:"depth"`
	Scroll    ScrollTuning    `yaml:"scroll"`
	Bucket    BucketTuning    `yaml:"bucket"`
	Coin      FallerTuning    `yaml:"coin"`
	Obstacle  FallerTuning    `yaml:"obstacle"`
	Spawn     SpawnTuning     `yaml:"spawn"`
	Collision CollisionTuning `yaml:"collision"`
	Particles ParticleTuning  `yaml:"particles"`
	Shop      ShopTuning      `yaml:"shop"`
	Well      WellTuning      `yaml:"well"`
}

// DepthTuning 深度积分速率（每毫秒）
type DepthTuning struct {
	DescentRate float64 `yaml:"descentRate"` // PLAYING 时深度增长速率
	AscentRate  float64 `yaml:"ascentRate"`  // RETURNING 时深度下降速率
}

// ScrollTuning 井壁滚动速度（每毫秒，带符号）
type ScrollTuning struct {
	DescentSpeed float64 `yaml:"descentSpeed"`
	AscentSpeed  float64 `yaml:"ascentSpeed"`
}

// BucketTuning 水桶几何与属性
type BucketTuning struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	YRatio     float64 `yaml:"yRatio"`     // 水桶 y = 视口高度 * YRatio
	Health     int     `yaml:"health"`     // 初始生命
	WallMargin float64 `yaml:"wallMargin"` // 指针夹取带距离左右边缘的宽度
	Smoothing  float64 `yaml:"smoothing"`  // 每 tick 向目标靠近的比例
}

// FallerTuning 金币/障碍物（上浮物体）参数
type FallerTuning struct {
	SpawnInterval float64 `yaml:"spawnInterval"` // 生成间隔（毫秒），计时器严格大于此值时生成
	MinSpeed      float64 `yaml:"minSpeed"`      // 上浮速度下限（每 tick）
	SpeedRange    float64 `yaml:"speedRange"`    // 上浮速度随机附加范围
	RotSpeed      float64 `yaml:"rotSpeed"`      // 每 tick 旋转弧度
	Size          float64 `yaml:"size"`          // 金币为半径，障碍物为边长
	Value         int     `yaml:"value"`         // 金币分值，障碍物忽略
}

// SpawnTuning 生成位置
type SpawnTuning struct {
	EdgeMargin   float64 `yaml:"edgeMargin"`   // x ∈ [EdgeMargin, W-EdgeMargin)
	BottomOffset float64 `yaml:"bottomOffset"` // y = H + BottomOffset
	CullY        float64 `yaml:"cullY"`        // y < CullY 时标记删除
}

// CollisionTuning 碰撞判定
type CollisionTuning struct {
	Tolerance float64 `yaml:"tolerance"` // 垂直方向容差，金币与障碍物共用
}

// ParticleTuning 碰撞粒子
type ParticleTuning struct {
	Burst      int     `yaml:"burst"`      // 每次碰撞生成的粒子数
	MaxSpeed   float64 `yaml:"maxSpeed"`   // 速度分量 ∈ [-MaxSpeed, MaxSpeed)
	MinSize    float64 `yaml:"minSize"`    // 半径下限
	SizeRange  float64 `yaml:"sizeRange"`  // 半径随机附加范围
	MinDecay   float64 `yaml:"minDecay"`   // 每 tick 衰减下限
	DecayRange float64 `yaml:"decayRange"` // 衰减随机附加范围
}

// ShopTuning 商店每级倍率
type ShopTuning struct {
	CapacityPerLevel int `yaml:"capacityPerLevel"`
	DepthPerLevel    int `yaml:"depthPerLevel"`
	CostPerLevel     int `yaml:"costPerLevel"`
}

// WellTuning 井壁绘制尺寸
type WellTuning struct {
	WallWidth   float64 `yaml:"wallWidth"`
	BrickHeight float64 `yaml:"brickHeight"`
}

// DefaultTuning 返回默认调参
func DefaultTuning() *Tuning {
	return &Tuning{
		MaxFrameDelta: 100,
		Depth: DepthTuning{
			DescentRate: 0.01,
			AscentRate:  0.02,
		},
		Scroll: ScrollTuning{
			DescentSpeed: 0.1,
			AscentSpeed:  -0.2,
		},
		Bucket: BucketTuning{
			Width:      60,
			Height:     50,
			YRatio:     0.2,
			Health:     3,
			WallMargin: 50,
			Smoothing:  0.1,
		},
		Coin: FallerTuning{
			SpawnInterval: 1000,
			MinSpeed:      2,
			SpeedRange:    3,
			RotSpeed:      0.1,
			Size:          12,
			Value:         10,
		},
		Obstacle: FallerTuning{
			SpawnInterval: 2000,
			MinSpeed:      3,
			SpeedRange:    4,
			RotSpeed:      0.05,
			Size:          25,
		},
		Spawn: SpawnTuning{
			EdgeMargin:   60,
			BottomOffset: 50,
			CullY:        -50,
		},
		Collision: CollisionTuning{
			Tolerance: 25,
		},
		Particles: ParticleTuning{
			Burst:      8,
			MaxSpeed:   3,
			MinSize:    2,
			SizeRange:  3,
			MinDecay:   0.02,
			DecayRange: 0.03,
		},
		Shop: ShopTuning{
			CapacityPerLevel: 10,
			DepthPerLevel:    50,
			CostPerLevel:     100,
		},
		Well: WellTuning{
			WallWidth:   50,
			BrickHeight: 60,
		},
	}
}

// ParseTuning 从 YAML 数据解析调参，未出现的键保留默认值
func ParseTuning(data []byte) (*Tuning, error) {
	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}
	return tuning, nil
}

// LoadTuning 从文件加载调参
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *Tuning: 加载成功后的配置
//   - error: 读取、解析或校验失败
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuning(data)
}

// Validate 校验配置合法性
func (t *Tuning) Validate() error {
	if t.MaxFrameDelta <= 0 {
		return fmt.Errorf("maxFrameDelta must be positive, got %.2f", t.MaxFrameDelta)
	}
	if t.Depth.DescentRate <= 0 || t.Depth.AscentRate <= 0 {
		return fmt.Errorf("depth rates must be positive: descent=%.4f ascent=%.4f",
			t.Depth.DescentRate, t.Depth.AscentRate)
	}
	if t.Bucket.Width <= 0 || t.Bucket.Height <= 0 {
		return fmt.Errorf("bucket size must be positive: %.1fx%.1f", t.Bucket.Width, t.Bucket.Height)
	}
	if t.Bucket.Health <= 0 {
		return fmt.Errorf("bucket health must be positive, got %d", t.Bucket.Health)
	}
	if t.Bucket.Smoothing <= 0 || t.Bucket.Smoothing > 1 {
		return fmt.Errorf("bucket smoothing must be in (0, 1], got %.3f", t.Bucket.Smoothing)
	}
	if t.Coin.SpawnInterval <= 0 || t.Obstacle.SpawnInterval <= 0 {
		return fmt.Errorf("spawn intervals must be positive: coin=%.0f obstacle=%.0f",
			t.Coin.SpawnInterval, t.Obstacle.SpawnInterval)
	}
	if t.Coin.MinSpeed <= 0 || t.Obstacle.MinSpeed <= 0 {
		return fmt.Errorf("faller speeds must be positive: coin=%.2f obstacle=%.2f",
			t.Coin.MinSpeed, t.Obstacle.MinSpeed)
	}
	if t.Coin.SpeedRange < 0 || t.Obstacle.SpeedRange < 0 {
		return fmt.Errorf("speed ranges must not be negative")
	}
	if t.Collision.Tolerance <= 0 {
		return fmt.Errorf("collision tolerance must be positive, got %.1f", t.Collision.Tolerance)
	}
	if t.Particles.Burst < 0 {
		return fmt.Errorf("particle burst must not be negative, got %d", t.Particles.Burst)
	}
	if t.Particles.MinDecay <= 0 {
		return fmt.Errorf("particle decay must be positive, got %.3f", t.Particles.MinDecay)
	}
	if t.Shop.CapacityPerLevel <= 0 || t.Shop.DepthPerLevel <= 0 || t.Shop.CostPerLevel <= 0 {
		return fmt.Errorf("shop factors must be positive: capacity=%d depth=%d cost=%d",
			t.Shop.CapacityPerLevel, t.Shop.DepthPerLevel, t.Shop.CostPerLevel)
	}
	if t.Well.BrickHeight <= 0 {
		return fmt.Errorf("well brick height must be positive, got %.1f", t.Well.BrickHeight)
	}
	return nil
}
