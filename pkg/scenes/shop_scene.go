package scenes

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/game"
)

// ShopScene 升级商店
// 每次购买后立即刷新显示，买不起的升级按钮置灰
type ShopScene struct {
	game         *game.Game
	sceneManager *game.SceneManager
	ui           *ebitenui.UI

	bank        *widget.Text
	capacity    *widget.Text
	depth       *widget.Text
	buyCapacity *widget.Button
	buyDepth    *widget.Button
}

// NewShopScene 创建商店场景
func NewShopScene(g *game.Game, sm *game.SceneManager) *ShopScene {
	s := &ShopScene{
		game:         g,
		sceneManager: sm,
	}

	kit := newUIKit()
	panel := kit.panel(widget.AnchorLayoutPositionCenter, widget.AnchorLayoutPositionCenter)
	panel.AddChild(kit.text("UPGRADES", config.ColorGold))

	s.bank = kit.text("", config.ColorText)
	panel.AddChild(s.bank)

	s.capacity = kit.text("", config.ColorText)
	s.buyCapacity = kit.button("", func() {
		s.game.Shop().BuyCapacity()
		s.refresh()
	})
	panel.AddChild(s.capacity)
	panel.AddChild(s.buyCapacity)

	s.depth = kit.text("", config.ColorText)
	s.buyDepth = kit.button("", func() {
		s.game.Shop().BuyDepth()
		s.refresh()
	})
	panel.AddChild(s.depth)
	panel.AddChild(s.buyDepth)

	panel.AddChild(kit.button("Close", s.close))

	s.ui = newUI(panel)
	s.refresh()
	return s
}

// OnEnter 打开商店时刷新
func (s *ShopScene) OnEnter() {
	s.refresh()
}

// Update 处理按钮，Esc 关闭商店
func (s *ShopScene) Update(deltaTime float64) {
	s.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.close()
	}
}

// Draw 清屏并绘制商店
func (s *ShopScene) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.ui.Draw(screen)
}

func (s *ShopScene) close() {
	s.sceneManager.Switch(game.SceneMenu)
}

func (s *ShopScene) refresh() {
	view := s.game.Shop().View()

	s.bank.Label = bankLine(view.Bank)
	s.capacity.Label = capacityLine(view)
	s.depth.Label = depthLine(view)
	s.buyCapacity.Text().Label = costLabel(view.CapCost)
	s.buyDepth.Text().Label = costLabel(view.DepthCost)
	setEnabled(s.buyCapacity, view.CanBuyCapacity)
	setEnabled(s.buyDepth, view.CanBuyDepth)
}

func capacityLine(view game.ShopView) string {
	return fmt.Sprintf("Bucket Capacity: %d -> %d", view.CapacityCurrent, view.CapacityNext)
}

func depthLine(view game.ShopView) string {
	return fmt.Sprintf("Max Depth: %s -> %s", view.MaxDepthCurrent, view.MaxDepthNext)
}

func costLabel(cost int) string {
	return fmt.Sprintf("Upgrade (%d gold)", cost)
}
