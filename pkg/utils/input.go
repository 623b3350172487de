// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsTouching 检查当前是否有活动的触摸
func IsTouching() bool {
	return len(ebiten.AppendTouchIDs(nil)) > 0
}

// PointerTracker 跟踪指针的水平位置
//
// 鼠标只有在真正移动后才算一次输入，窗口刚打开、鼠标还没进入窗口时保持调用方的初始值；
// 触摸期间每帧都算一次输入。
type PointerTracker struct {
	lastX, lastY int
	seen         bool
}

// Poll 读取本帧指针
// 返回指针 x 以及本帧是否应当更新目标位置
func (p *PointerTracker) Poll() (int, bool) {
	x, y := GetPointerPosition()
	if IsTouching() {
		p.lastX, p.lastY = x, y
		return x, true
	}
	return x, p.observe(x, y)
}

// observe 记录鼠标位置，位置相对上一次发生变化时返回 true
// 第一次观察只建立基准，不算移动
func (p *PointerTracker) observe(x, y int) bool {
	if !p.seen {
		p.seen = true
		p.lastX, p.lastY = x, y
		return false
	}
	if x == p.lastX && y == p.lastY {
		return false
	}
	p.lastX, p.lastY = x, y
	return true
}
