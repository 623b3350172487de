package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level screens by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// Scenes are registered by name so that scenes can switch to each other without
// holding references (menu -> shop -> menu, menu -> play -> menu).
type SceneManager struct {
	scenes       map[SceneName]Scene
	currentScene Scene
	currentName  SceneName
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Switch or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[SceneName]Scene),
	}
}

// Register 注册命名场景，同名场景会被覆盖
func (sm *SceneManager) Register(name SceneName, scene Scene) {
	sm.scenes[name] = scene
}

// Switch 切换到已注册的命名场景
// 场景未注册时记录错误并返回 false，当前场景保持不变
func (sm *SceneManager) Switch(name SceneName) bool {
	scene, ok := sm.scenes[name]
	if !ok {
		log.Printf("[SceneManager] 错误: 场景未注册: %s", name)
		return false
	}

	log.Printf("[SceneManager] 切换场景: %s -> %s", sm.currentName, name)
	sm.currentName = name
	sm.SwitchTo(scene)
	return true
}

// SwitchTo changes the active scene to the provided scene.
// If the scene implements Enterable, OnEnter is called before the next Update.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if enterable, ok := scene.(Enterable); ok {
		enterable.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前命名场景，通过 SwitchTo 直接切换时不更新
func (sm *SceneManager) CurrentName() SceneName {
	return sm.currentName
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
