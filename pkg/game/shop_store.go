package game

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// 存储路径常量
// 三个字段各存为一个十进制整数文本
const (
	shopObject       = "ww"
	shopPropGold     = "totalGold"
	shopPropCapLevel = "capLevel"
	shopPropDepthLvl = "depthLevel"
)

// GdataShopStore 基于 gdata 的商店存储
type GdataShopStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
}

// NewGdataShopStore 创建 gdata 商店存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，Load 返回默认值，Save 不落盘）
func NewGdataShopStore(gdataManager *gdata.Manager) *GdataShopStore {
	return &GdataShopStore{gdataManager: gdataManager}
}

// Load 读取三个字段
//
// 缺失的字段取默认值；无法解析的字段取默认值并汇总到返回的 error 中。
func (s *GdataShopStore) Load() (ShopData, error) {
	data := DefaultShopData()
	if s.gdataManager == nil {
		return data, nil
	}

	var errs []error
	load := func(prop string, dst *int) {
		value, err := s.loadInt(prop)
		if err != nil {
			errs = append(errs, err)
			return
		}
		if value != nil {
			*dst = *value
		}
	}

	load(shopPropGold, &data.TotalGold)
	load(shopPropCapLevel, &data.CapLevel)
	load(shopPropDepthLvl, &data.DepthLevel)

	return data, errors.Join(errs...)
}

// loadInt 读取单个整数字段，字段不存在时返回 (nil, nil)
func (s *GdataShopStore) loadInt(prop string) (*int, error) {
	if !s.gdataManager.ObjectPropExists(shopObject, prop) {
		return nil, nil
	}

	raw, err := s.gdataManager.LoadObjectProp(shopObject, prop)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", prop, err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", prop, err)
	}
	return &value, nil
}

// Save 整体覆盖保存三个字段
func (s *GdataShopStore) Save(data ShopData) error {
	if s.gdataManager == nil {
		return nil
	}

	props := []struct {
		name  string
		value int
	}{
		{shopPropGold, data.TotalGold},
		{shopPropCapLevel, data.CapLevel},
		{shopPropDepthLvl, data.DepthLevel},
	}
	for _, p := range props {
		if err := s.gdataManager.SaveObjectProp(shopObject, p.name, []byte(strconv.Itoa(p.value))); err != nil {
			return fmt.Errorf("failed to save %s: %w", p.name, err)
		}
	}

	log.Printf("[ShopStore] Saved: gold=%d capLevel=%d depthLevel=%d",
		data.TotalGold, data.CapLevel, data.DepthLevel)
	return nil
}

// MemoryShopStore 仅内存的商店存储
// 用于 gdata 不可用时的降级运行和测试
type MemoryShopStore struct {
	data  ShopData
	saves int
}

// NewMemoryShopStore 创建带初始数据的内存存储
func NewMemoryShopStore(initial ShopData) *MemoryShopStore {
	return &MemoryShopStore{data: initial}
}

// Load 返回当前数据
func (s *MemoryShopStore) Load() (ShopData, error) {
	return s.data, nil
}

// Save 覆盖当前数据
func (s *MemoryShopStore) Save(data ShopData) error {
	s.data = data
	s.saves++
	return nil
}

// Saves 返回 Save 被调用的次数
func (s *MemoryShopStore) Saves() int {
	return s.saves
}
