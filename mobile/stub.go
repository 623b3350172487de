//go:build !mobile

// 桌面构建下 mobile 包只保留 Dummy，
// ebitenmobile 绑定入口见 mobile.go（-tags mobile）。
package mobile

// Dummy 保证 ./... 在未带 mobile 标签时也能编译此包
func Dummy() {}
