package scenes

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/game"
)

// MenuScene 主菜单：开始游戏、打开商店
type MenuScene struct {
	game         *game.Game
	sceneManager *game.SceneManager
	ui           *ebitenui.UI
	bank         *widget.Text
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(g *game.Game, sm *game.SceneManager) *MenuScene {
	s := &MenuScene{
		game:         g,
		sceneManager: sm,
	}

	kit := newUIKit()
	panel := kit.panel(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter)
	panel.AddChild(kit.text("WISHING WELL", config.ColorGold))
	panel.AddChild(kit.text("The Descent", config.ColorText))
	s.bank = kit.text(bankLine(0), config.ColorText)
	panel.AddChild(s.bank)
	panel.AddChild(kit.button("Start Descent", s.start))
	panel.AddChild(kit.button("Upgrades", s.openShop))
	panel.AddChild(kit.text("Move: mouse / touch   Pull up: Space", config.ColorTextOff))

	s.ui = newUI(panel)
	return s
}

// OnEnter 进入菜单时刷新余额
func (s *MenuScene) OnEnter() {
	s.bank.Label = bankLine(s.game.Shop().TotalGold())
}

// Update 处理按钮与快捷键
func (s *MenuScene) Update(deltaTime float64) {
	s.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.start()
	}
}

// Draw 清屏并绘制菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.ui.Draw(screen)
}

func (s *MenuScene) start() {
	if !s.game.Start() {
		log.Printf("[MenuScene] Start rejected in state %s", s.game.State())
		return
	}
	s.sceneManager.Switch(game.ScenePlay)
}

func (s *MenuScene) openShop() {
	s.sceneManager.Switch(game.SceneShop)
}

// bankLine 菜单与商店共用的余额文本
func bankLine(gold int) string {
	return fmt.Sprintf("Bank: %d gold", gold)
}
