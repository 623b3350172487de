package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/wishingwell/pkg/components"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/ecs"
	"github.com/decker502/wishingwell/pkg/entities"
	"github.com/decker502/wishingwell/pkg/systems"
)

// Game 一局局循环的模拟核心
//
// Game 不依赖窗口或输入设备：指针位置通过 SetPointerX 写入，时间通过 Update(deltaMs) 推进，
// HUD 与存储都是注入的端口，因此整个模拟可以在测试中无头运行。
//
// 所有金币、落石、粒子以及水桶和井壁都是 entityManager 中的实体，
// 只在 PLAYING / RETURNING 期间存在，一局结束时全部清除。
type Game struct {
	state  RunState
	tuning *config.Tuning
	shop   *Shop
	hud    HUD
	rng    *rand.Rand

	viewW, viewH float64
	pointerX     float64

	score int
	depth float64

	entityManager *ecs.EntityManager
	bucketID      ecs.EntityID
	wellID        ecs.EntityID

	fallerSystem    *systems.FallerSystem
	bucketSystem    *systems.BucketSystem
	wellSystem      *systems.WellSystem
	spawnSystem     *systems.SpawnSystem
	particleSystem  *systems.ParticleSystem
	collisionSystem *systems.CollisionSystem
	renderSystem    *systems.RenderSystem

	outcome    Outcome
	hasOutcome bool
}

// Option 配置 Game 的可选项
type Option func(*Game)

// WithRand 注入随机源（测试中使用固定种子）
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithHUD 注入 HUD 端口
func WithHUD(hud HUD) Option {
	return func(g *Game) {
		g.hud = hud
	}
}

// WithViewport 设置初始视口尺寸
func WithViewport(w, h float64) Option {
	return func(g *Game) {
		g.viewW = w
		g.viewH = h
	}
}

// NewGame 创建处于 MENU 状态的游戏
//
// 参数：
//   - shop: 已加载的商店
//   - tuning: 调参配置
//   - opts: 可选项（随机源、HUD、视口）
func NewGame(shop *Shop, tuning *config.Tuning, opts ...Option) *Game {
	g := &Game{
		state:         StateMenu,
		tuning:        tuning,
		shop:          shop,
		viewW:         float64(config.GameWindowWidth),
		viewH:         float64(config.GameWindowHeight),
		entityManager: ecs.NewEntityManager(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.pointerX = g.viewW / 2

	g.fallerSystem = systems.NewFallerSystem(g.entityManager, tuning)
	g.bucketSystem = systems.NewBucketSystem(g.entityManager, tuning)
	g.wellSystem = systems.NewWellSystem(g.entityManager)
	g.spawnSystem = systems.NewSpawnSystem(g.entityManager, g.rng, tuning)
	g.particleSystem = systems.NewParticleSystem(g.entityManager)
	g.collisionSystem = systems.NewCollisionSystem(g.entityManager, g.rng, tuning)
	g.renderSystem = systems.NewRenderSystem(g.entityManager)

	return g
}

// State 返回当前状态
func (g *Game) State() RunState { return g.state }

// Score 返回本局分数
func (g *Game) Score() int { return g.score }

// Depth 返回当前深度（米）
func (g *Game) Depth() float64 { return g.depth }

// Shop 返回商店
func (g *Game) Shop() *Shop { return g.shop }

// Tuning 返回当前调参
func (g *Game) Tuning() *config.Tuning { return g.tuning }

// PointerX 返回最后一次写入的指针 x
func (g *Game) PointerX() float64 { return g.pointerX }

// Viewport 返回视口尺寸
func (g *Game) Viewport() (float64, float64) { return g.viewW, g.viewH }

// EntityManager 返回实体管理器（只读用途：渲染与测试）
func (g *Game) EntityManager() *ecs.EntityManager { return g.entityManager }

// BucketID 返回本局水桶实体ID，不在局内时为 0
func (g *Game) BucketID() ecs.EntityID { return g.bucketID }

// Outcome 返回上一局的结算信息
// 还没有结束过任何一局时第二个返回值为 false
func (g *Game) Outcome() (Outcome, bool) { return g.outcome, g.hasOutcome }

// SetHUD 替换 HUD 端口，可为 nil
func (g *Game) SetHUD(hud HUD) {
	g.hud = hud
}

// SetPointerX 写入指针 x（视口坐标），多次写入以最后一次为准
func (g *Game) SetPointerX(x float64) {
	g.pointerX = x
}

// SetTuning 热加载调参，下一个 tick 生效
func (g *Game) SetTuning(tuning *config.Tuning) {
	if tuning == nil {
		return
	}
	g.tuning = tuning
	g.fallerSystem.SetTuning(tuning)
	g.bucketSystem.SetTuning(tuning)
	g.spawnSystem.SetTuning(tuning)
	g.collisionSystem.SetTuning(tuning)
	g.shop.SetTuning(tuning.Shop)
	log.Printf("[Game] Tuning updated")
}

// Resize 更新视口尺寸，并把水桶 y 重新固定到 h * YRatio
func (g *Game) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if w == g.viewW && h == g.viewH {
		return
	}
	g.viewW, g.viewH = w, h

	if pos, ok := ecs.GetComponent[*components.PositionComponent](g.entityManager, g.bucketID); ok {
		pos.Y = h * g.tuning.Bucket.YRatio
	}
	log.Printf("[Game] Viewport resized to %.0fx%.0f", w, h)
}

// Start 开始新的一局（MENU 或 GAMEOVER → PLAYING）
//
// 重置分数、深度、生成计时器和所有实体，创建新的水桶和井壁。
// 在局内调用时忽略并返回 false。
func (g *Game) Start() bool {
	if g.state.IsActive() {
		log.Printf("[Game] Start ignored in state %s", g.state)
		return false
	}

	g.score = 0
	g.depth = 0
	g.spawnSystem.Reset()
	g.entityManager.Clear()
	g.bucketID = entities.NewBucketEntity(g.entityManager, g.tuning, g.viewW, g.viewH)
	g.wellID = entities.NewWellEntity(g.entityManager, g.tuning)

	log.Printf("[Game] %s -> PLAYING (capacity=%d maxDepth=%dm)", g.state, g.shop.Capacity(), g.shop.MaxDepth())
	g.state = StatePlaying
	g.refreshHUD()
	return true
}

// PullUp 开始上升（PLAYING → RETURNING），其他状态下忽略
func (g *Game) PullUp() bool {
	if g.state != StatePlaying {
		return false
	}
	g.state = StateReturning
	log.Printf("[Game] PLAYING -> RETURNING at %.1fm", g.depth)
	return true
}

// ReturnToMenu 从结算界面回到主菜单（GAMEOVER → MENU），其他状态下忽略
func (g *Game) ReturnToMenu() bool {
	if g.state != StateGameOver {
		return false
	}
	g.state = StateMenu
	log.Printf("[Game] GAMEOVER -> MENU")
	return true
}

// Update 推进一个 tick
//
// deltaMs 为距上一 tick 的毫秒数：负值视为 0，超过 MaxFrameDelta 的部分被截断。
// 深度、井壁滚动和生成计时按 deltaMs 积分；物体与粒子的位移按 tick 计。
func (g *Game) Update(deltaMs float64) {
	if !g.state.IsActive() {
		return
	}
	deltaMs = g.clampDelta(deltaMs)

	// 1-2. 深度与状态转换
	switch g.state {
	case StatePlaying:
		g.depth += deltaMs * g.tuning.Depth.DescentRate
		if maxDepth := float64(g.shop.MaxDepth()); g.depth >= maxDepth {
			g.depth = maxDepth
			g.PullUp()
		}
	case StateReturning:
		g.depth -= deltaMs * g.tuning.Depth.AscentRate
		if g.depth <= 0 {
			g.depth = 0
			g.gameOver(true)
			return
		}
	}

	// 3. 井壁滚动
	scrollSpeed := g.tuning.Scroll.DescentSpeed
	if g.state == StateReturning {
		scrollSpeed = g.tuning.Scroll.AscentSpeed
	}
	g.wellSystem.Update(deltaMs, scrollSpeed)

	// 4. 水桶跟随指针
	g.bucketSystem.Update(g.bucketID, g.pointerX, g.viewW)

	// 5. 生成
	if g.state == StatePlaying {
		g.spawnSystem.Update(deltaMs, g.viewW, g.viewH)
	}

	// 6. 移动金币与落石
	g.fallerSystem.Update()

	// 7. 碰撞
	if g.state == StatePlaying {
		result := g.collisionSystem.Update(g.bucketID, g.shop.Capacity())
		g.score += result.ScoreGained
		if result.BucketLost {
			g.gameOver(false)
			return
		}
	}

	// 8. 粒子与清扫
	g.particleSystem.Update()
	g.entityManager.RemoveMarkedEntities()

	// 9. HUD
	g.refreshHUD()
}

// Draw 绘制当前画面：局内绘制井内世界，其他状态只清屏
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Clear(screen)
	if g.state.IsActive() {
		g.renderSystem.DrawWorld(screen, g.bucketID, g.shop.Capacity())
	}
}

// Snapshot 返回当前 HUD 数据
func (g *Game) Snapshot() HUDSnapshot {
	snapshot := HUDSnapshot{
		Score:     g.score,
		ScoreText: FormatScore(g.score),
		Depth:     g.depth,
		DepthText: FormatDepth(g.depth),
		Capacity:  g.shop.Capacity(),
	}
	if bucket, ok := ecs.GetComponent[*components.BucketComponent](g.entityManager, g.bucketID); ok {
		snapshot.Load = bucket.CurrentLoad
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](g.entityManager, g.bucketID); ok {
		snapshot.Health = health.CurrentHealth
	}
	snapshot.LoadText = FormatLoad(snapshot.Load, snapshot.Capacity)
	snapshot.HealthText = HealthGlyphs(snapshot.Health)
	return snapshot
}

func (g *Game) refreshHUD() {
	if g.hud != nil {
		g.hud.Refresh(g.Snapshot())
	}
}

func (g *Game) clampDelta(deltaMs float64) float64 {
	if deltaMs < 0 {
		return 0
	}
	if deltaMs > g.tuning.MaxFrameDelta {
		return g.tuning.MaxFrameDelta
	}
	return deltaMs
}

// gameOver 结束本局
// 成功时把分数存入商店；失败时分数清零。随后清除所有实体。
func (g *Game) gameOver(success bool) {
	title := titleFailure
	if success {
		title = titleSuccess
		g.shop.Deposit(g.score)
	} else {
		g.score = 0
	}

	g.outcome = Outcome{
		Success:   success,
		Title:     title,
		Score:     g.score,
		Depth:     g.depth,
		DepthText: FormatDepth(g.depth),
	}
	g.hasOutcome = true

	log.Printf("[Game] %s -> GAMEOVER (%s score=%d depth=%s)", g.state, title, g.score, g.outcome.DepthText)
	g.state = StateGameOver
	g.entityManager.Clear()
	g.bucketID = 0
	g.wellID = 0
}
