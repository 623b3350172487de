//go:build mobile

package utils

// IsMobile 移动端构建恒为 true：隐藏 F11 全屏，指针只来自触摸
func IsMobile() bool {
	return true
}
