package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (main menu, shop, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景被切换为当前场景时调用 OnEnter()
//
// 用于在进入界面时刷新显示数据（如商店余额）。
type Enterable interface {
	OnEnter()
}

// SceneName 场景注册名
type SceneName string

const (
	SceneMenu SceneName = "menu"
	SceneShop SceneName = "shop"
	ScenePlay SceneName = "play"
)
