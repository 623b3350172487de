// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/embedded"
	"github.com/decker502/wishingwell/pkg/game"
	"github.com/decker502/wishingwell/pkg/scenes"
	"github.com/decker502/wishingwell/pkg/utils"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "wishingwell"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 调参文件路径，为空则使用嵌入的 data/tuning.yaml
	TuningPath string
	// Watch 监听 TuningPath 变化并热加载（TuningPath 为空时忽略）
	Watch bool
	// AppName gdata 存储目录名，为空则使用 DefaultAppName
	AppName string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	game                     *game.Game
	settings                 *game.SettingsManager
	watcher                  *config.TuningWatcher
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := loadTuning(cfg.TuningPath)
	if err != nil {
		return nil, err
	}

	gdataManager := openStorage(cfg.AppName)

	settings := game.NewSettingsManager(gdataManager)
	if err := settings.Load(); err != nil {
		log.Printf("[App] Warning: failed to load settings: %v", err)
	}
	if settings.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	shop := game.NewShop(game.NewGdataShopStore(gdataManager), tuning.Shop)
	g := game.NewGame(shop, tuning)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.SceneMenu, scenes.NewMenuScene(g, sceneManager))
	sceneManager.Register(game.SceneShop, scenes.NewShopScene(g, sceneManager))
	sceneManager.Register(game.ScenePlay, scenes.NewPlayScene(g, sceneManager))
	sceneManager.Switch(game.SceneMenu)

	a := &App{
		sceneManager: sceneManager,
		game:         g,
		settings:     settings,
		verbose:      cfg.Verbose,
	}

	if cfg.Watch && cfg.TuningPath != "" {
		watcher, err := config.NewTuningWatcher(cfg.TuningPath)
		if err != nil {
			log.Printf("[App] Warning: tuning hot reload disabled: %v", err)
		} else {
			a.watcher = watcher
		}
	}

	log.Printf("[App] Ready: bank=%d capacity=%d maxDepth=%dm",
		shop.TotalGold(), shop.Capacity(), shop.MaxDepth())
	return a, nil
}

// loadTuning 优先读取外部文件，否则使用嵌入的默认调参
func loadTuning(path string) (*config.Tuning, error) {
	if path != "" {
		tuning, err := config.LoadTuning(path)
		if err != nil {
			return nil, fmt.Errorf("调参配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载调参文件: %s", path)
		return tuning, nil
	}

	data, err := embedded.ReadFile("data/tuning.yaml")
	if err != nil {
		log.Printf("[Config] Warning: embedded tuning unavailable (%v), using defaults", err)
		return config.DefaultTuning(), nil
	}
	tuning, err := config.ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("嵌入调参配置无效: %w", err)
	}
	return tuning, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为仅内存）
func openStorage(appName string) *gdata.Manager {
	if appName == "" {
		appName = DefaultAppName
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, progress will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if a.watcher != nil {
		if tuning := a.watcher.Poll(); tuning != nil {
			a.game.SetTuning(tuning)
			log.Printf("[App] Tuning reloaded")
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(!a.settings.GetSettings().Fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 视口跟随窗口尺寸，每边不小于 config.MinViewportSize
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := layoutSize(outsideWidth, outsideHeight)
	a.game.Resize(float64(w), float64(h))
	return w, h
}

func layoutSize(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, config.MinViewportSize), max(outsideHeight, config.MinViewportSize)
}

// Close 停止调参文件监听
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Game 返回模拟核心
func (a *App) Game() *game.Game {
	return a.game
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
