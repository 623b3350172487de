package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HeartGlyph 生命值图标
const HeartGlyph = "❤️"

// HUDSnapshot 每个 tick 推送给 HUD 的只读显示数据
type HUDSnapshot struct {
	Score      int
	ScoreText  string
	Depth      float64
	DepthText  string // 向下取整的米数，如 "12m"
	Load       int
	Capacity   int
	LoadText   string // "3/10"
	Health     int
	HealthText string // 重复的生命图标
}

// HUD 接收 HUDSnapshot 的显示端口
// 模拟核心不关心 HUD 如何展示，测试中可以不注入
type HUD interface {
	Refresh(snapshot HUDSnapshot)
}

// HUDFunc 把普通函数适配为 HUD
type HUDFunc func(snapshot HUDSnapshot)

// Refresh 调用 f(snapshot)
func (f HUDFunc) Refresh(snapshot HUDSnapshot) {
	f(snapshot)
}

// ShopView 商店界面显示数据
type ShopView struct {
	Bank            int
	CapacityCurrent int
	CapacityNext    int
	CapCost         int
	MaxDepthCurrent string
	MaxDepthNext    string
	DepthCost       int
	CanBuyCapacity  bool
	CanBuyDepth     bool
}

// Outcome 一局结束时的结算信息
type Outcome struct {
	Success   bool
	Title     string
	Score     int
	Depth     float64
	DepthText string
}

const (
	titleSuccess = "Well Done!"
	titleFailure = "Bucket Lost!"
)

// FormatDepth 把深度格式化为整数米，如 12.9 -> "12m"
func FormatDepth(depth float64) string {
	return fmt.Sprintf("%dm", int(math.Floor(depth)))
}

// FormatLoad 格式化装载量，如 "3/10"
func FormatLoad(load, capacity int) string {
	return fmt.Sprintf("%d/%d", load, capacity)
}

// HealthGlyphs 返回 health 个生命图标，负数视为 0
func HealthGlyphs(health int) string {
	if health <= 0 {
		return ""
	}
	return strings.Repeat(HeartGlyph, health)
}

// FormatScore 格式化分数
func FormatScore(score int) string {
	return strconv.Itoa(score)
}
