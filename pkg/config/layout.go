package config

import "image/color"

// 窗口与视口默认值
// 视口大小跟随窗口变化（ebiten Layout 返回外部尺寸），这里只是启动时的窗口大小
const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 480

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 800

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Wishing Well: The Descent"

	// MinViewportSize 视口最小边长，小于此值时 Layout 使用该值
	MinViewportSize = 200
)

// 调色板
var (
	ColorBackground  = color.RGBA{R: 0x0a, G: 0x0a, B: 0x12, A: 0xff}
	ColorWall        = color.RGBA{R: 0x2d, G: 0x2d, B: 0x3a, A: 0xff}
	ColorBrick       = color.RGBA{R: 0x1a, G: 0x1a, B: 0x24, A: 0xff}
	ColorGold        = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	ColorGoldEdge    = color.RGBA{R: 0xb8, G: 0x86, B: 0x0b, A: 0xff}
	ColorCoinShine   = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0x99} // 白色 60% 透明度（预乘）
	ColorRock        = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	ColorRockEdge    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	ColorRope        = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	ColorBucket      = color.RGBA{R: 0x5d, G: 0x40, B: 0x37, A: 0xff}
	ColorBucketEdge  = color.RGBA{R: 0x3e, G: 0x27, B: 0x23, A: 0xff}
	ColorHeart       = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	ColorVignette    = color.RGBA{A: 0x99}
	ColorPanel       = color.NRGBA{R: 0x10, G: 0x10, B: 0x1c, A: 0xe0}
	ColorButton      = color.NRGBA{R: 0x3a, G: 0x2f, B: 0x1f, A: 0xff}
	ColorButtonHover = color.NRGBA{R: 0x5a, G: 0x47, B: 0x2a, A: 0xff}
	ColorButtonOff   = color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	ColorText        = color.NRGBA{R: 0xf5, G: 0xe6, B: 0xc8, A: 0xff}
	ColorTextOff     = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)
