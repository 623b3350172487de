package scenes

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/game"
	"github.com/decker502/wishingwell/pkg/systems"
	"github.com/decker502/wishingwell/pkg/utils"
)

const (
	// overlayFadeSeconds 结算遮罩淡入时长
	overlayFadeSeconds = 0.4
	// overlayMaxAlpha 结算遮罩最终不透明度
	overlayMaxAlpha = 0.7

	heartSize    = 10
	heartSpacing = 26
)

// PlayScene 局内场景：HUD、上拉按钮和结算界面
//
// PlayScene 同时实现 game.HUD，Game 每个 tick 把 HUDSnapshot 推送过来。
type PlayScene struct {
	game         *game.Game
	sceneManager *game.SceneManager
	ui           *ebitenui.UI
	pointer      utils.PointerTracker

	hudPanel *widget.Container
	score    *widget.Text
	depth    *widget.Text
	load     *widget.Text
	health   int
	pullUp   *widget.Button

	overPanel   *widget.Container
	overTitle   *widget.Text
	overScore   *widget.Text
	overDepth   *widget.Text
	overElapsed float64

	lastState game.RunState
}

// NewPlayScene 创建局内场景并注册为 Game 的 HUD
func NewPlayScene(g *game.Game, sm *game.SceneManager) *PlayScene {
	s := &PlayScene{
		game:         g,
		sceneManager: sm,
		lastState:    g.State(),
	}

	kit := newUIKit()

	s.hudPanel = kit.panel(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionStart)
	s.score = kit.text("", config.ColorGold)
	s.depth = kit.text("", config.ColorText)
	s.load = kit.text("", config.ColorText)
	s.hudPanel.AddChild(s.score)
	s.hudPanel.AddChild(s.depth)
	s.hudPanel.AddChild(s.load)

	s.pullUp = kit.button("Pull Up!", func() {
		s.game.PullUp()
	})
	pullUpPanel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	pullUpPanel.AddChild(s.pullUp)

	s.overPanel = kit.panel(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter)
	s.overTitle = kit.text("", config.ColorGold)
	s.overScore = kit.text("", config.ColorText)
	s.overDepth = kit.text("", config.ColorText)
	s.overPanel.AddChild(s.overTitle)
	s.overPanel.AddChild(s.overScore)
	s.overPanel.AddChild(s.overDepth)
	s.overPanel.AddChild(kit.button("Dive Again", s.restart))
	s.overPanel.AddChild(kit.button("Menu", s.toMenu))

	s.ui = newUI(s.hudPanel, pullUpPanel, s.overPanel)

	g.SetHUD(s)
	s.Refresh(g.Snapshot())
	s.syncWidgets()
	return s
}

// Refresh 实现 game.HUD
func (s *PlayScene) Refresh(snapshot game.HUDSnapshot) {
	s.score.Label = "Score: " + snapshot.ScoreText
	s.depth.Label = "Depth: " + snapshot.DepthText
	s.load.Label = "Load: " + snapshot.LoadText
	s.health = snapshot.Health
}

// OnEnter 进入场景时同步控件状态
func (s *PlayScene) OnEnter() {
	s.lastState = s.game.State()
	s.overElapsed = 0
	s.Refresh(s.game.Snapshot())
	s.syncWidgets()
}

// Update 读取输入、推进模拟、同步界面
func (s *PlayScene) Update(deltaTime float64) {
	s.ui.Update()

	if x, moved := s.pointer.Poll(); moved {
		s.game.SetPointerX(float64(x))
	}

	switch s.game.State() {
	case game.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.game.PullUp()
		}
	case game.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.restart()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.toMenu()
			return
		}
	}

	s.game.Update(deltaTime * 1000)

	if state := s.game.State(); state != s.lastState {
		s.lastState = state
		s.overElapsed = 0
		s.syncWidgets()
	}
	if s.lastState == game.StateGameOver {
		s.overElapsed += deltaTime
	}
}

// Draw 绘制井内世界、生命值和结算遮罩
func (s *PlayScene) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	if s.game.State().IsActive() {
		s.drawHearts(screen)
	}
	if s.game.State() == game.StateGameOver {
		w := float32(screen.Bounds().Dx())
		h := float32(screen.Bounds().Dy())
		shade := systems.FadeColor(config.ColorBackground, overlayAlpha(s.overElapsed))
		vector.DrawFilledRect(screen, 0, 0, w, h, shade, false)
	}

	s.ui.Draw(screen)
}

func (s *PlayScene) drawHearts(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	for i := 0; i < s.health; i++ {
		x, y := heartPosition(i, s.health, w)
		drawHeart(screen, x, y)
	}
}

func (s *PlayScene) restart() {
	if s.game.Start() {
		s.lastState = s.game.State()
		s.syncWidgets()
	}
}

func (s *PlayScene) toMenu() {
	if s.game.ReturnToMenu() {
		s.sceneManager.Switch(game.SceneMenu)
	}
}

// syncWidgets 按当前状态切换 HUD、上拉按钮和结算面板
func (s *PlayScene) syncWidgets() {
	state := s.game.State()
	setVisible(s.hudPanel, state.IsActive())
	setVisible(s.pullUp, state == game.StatePlaying)
	setVisible(s.overPanel, state == game.StateGameOver)

	if outcome, ok := s.game.Outcome(); ok && state == game.StateGameOver {
		s.overTitle.Label = outcome.Title
		s.overScore.Label = fmt.Sprintf("Gold: %d", outcome.Score)
		s.overDepth.Label = "Depth: " + outcome.DepthText
	}
}

// overlayAlpha 结算遮罩在 elapsed 秒时的不透明度
func overlayAlpha(elapsed float64) float64 {
	return utils.EaseOutCubic(elapsed/overlayFadeSeconds) * overlayMaxAlpha
}

// heartPosition 第 i 颗心的中心位置，count 颗心在视口右上角从右向左排列
func heartPosition(i, count int, viewW float32) (float32, float32) {
	right := viewW - 70
	return right - float32(count-1-i)*heartSpacing, 30
}

// drawHeart 用两个圆和一个倒三角拼出心形
func drawHeart(screen *ebiten.Image, x, y float32) {
	r := float32(heartSize) / 2
	vector.DrawFilledCircle(screen, x-r+1, y, r, config.ColorHeart, true)
	vector.DrawFilledCircle(screen, x+r-1, y, r, config.ColorHeart, true)
	for row := float32(0); row < heartSize; row++ {
		half := float32(heartSize) * (1 - row/heartSize)
		vector.DrawFilledRect(screen, x-half, y+row, half*2, 1, config.ColorHeart, false)
	}
}
