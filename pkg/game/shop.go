package game

import (
	"log"

	"github.com/decker502/wishingwell/pkg/config"
)

// ShopData 商店的三个持久化计数
type ShopData struct {
	TotalGold  int
	CapLevel   int
	DepthLevel int
}

// DefaultShopData 返回新玩家的初始数据：0 金币，两项等级均为 1
func DefaultShopData() ShopData {
	return ShopData{TotalGold: 0, CapLevel: 1, DepthLevel: 1}
}

// sanitize 修正损坏的数据：等级至少为 1，金币不为负
func (d ShopData) sanitize() ShopData {
	if d.TotalGold < 0 {
		d.TotalGold = 0
	}
	if d.CapLevel < 1 {
		d.CapLevel = 1
	}
	if d.DepthLevel < 1 {
		d.DepthLevel = 1
	}
	return d
}

// ShopStore 商店数据的持久化端口
type ShopStore interface {
	// Load 读取已保存的数据，缺失字段用默认值补齐
	// 返回 error 时 ShopData 仍然可用（已补齐默认值）
	Load() (ShopData, error)
	// Save 整体覆盖保存三个字段
	Save(data ShopData) error
}

// Shop 持久化的升级商店
//
// 每次购买和每次成功结算都会立即保存。保存失败只记录日志，内存中的数据照常更新。
type Shop struct {
	store  ShopStore
	tuning config.ShopTuning
	data   ShopData
}

// NewShop 创建商店并从 store 加载数据
//
// 参数：
//   - store: 持久化端口，可为 nil（仅内存）
//   - tuning: 每级倍率（容量、深度、价格）
func NewShop(store ShopStore, tuning config.ShopTuning) *Shop {
	s := &Shop{
		store:  store,
		tuning: tuning,
		data:   DefaultShopData(),
	}

	if store != nil {
		data, err := store.Load()
		if err != nil {
			log.Printf("[Shop] Warning: Failed to load shop data: %v (using defaults for missing fields)", err)
		}
		s.data = data.sanitize()
	}

	log.Printf("[Shop] Loaded: gold=%d capLevel=%d depthLevel=%d",
		s.data.TotalGold, s.data.CapLevel, s.data.DepthLevel)
	return s
}

// SetTuning 替换每级倍率（热加载）
func (s *Shop) SetTuning(tuning config.ShopTuning) {
	s.tuning = tuning
}

// TotalGold 返回累计金币
func (s *Shop) TotalGold() int { return s.data.TotalGold }

// CapLevel 返回容量等级
func (s *Shop) CapLevel() int { return s.data.CapLevel }

// DepthLevel 返回深度等级
func (s *Shop) DepthLevel() int { return s.data.DepthLevel }

// Data 返回当前数据副本
func (s *Shop) Data() ShopData { return s.data }

// Capacity 水桶容量 = capLevel * 10
func (s *Shop) Capacity() int {
	return s.data.CapLevel * s.tuning.CapacityPerLevel
}

// MaxDepth 最大下潜深度（米）= depthLevel * 50
func (s *Shop) MaxDepth() int {
	return s.data.DepthLevel * s.tuning.DepthPerLevel
}

// CapCost 下一级容量的价格 = capLevel * 100
func (s *Shop) CapCost() int {
	return s.data.CapLevel * s.tuning.CostPerLevel
}

// DepthCost 下一级深度的价格 = depthLevel * 100
func (s *Shop) DepthCost() int {
	return s.data.DepthLevel * s.tuning.CostPerLevel
}

// BuyCapacity 购买一级容量
// 金币不足时不做任何改变并返回 false
func (s *Shop) BuyCapacity() bool {
	cost := s.CapCost()
	if s.data.TotalGold < cost {
		return false
	}
	s.data.TotalGold -= cost
	s.data.CapLevel++
	log.Printf("[Shop] Capacity upgraded to level %d (cost %d)", s.data.CapLevel, cost)
	s.save()
	return true
}

// BuyDepth 购买一级深度
// 金币不足时不做任何改变并返回 false
func (s *Shop) BuyDepth() bool {
	cost := s.DepthCost()
	if s.data.TotalGold < cost {
		return false
	}
	s.data.TotalGold -= cost
	s.data.DepthLevel++
	log.Printf("[Shop] Max depth upgraded to level %d (cost %d)", s.data.DepthLevel, cost)
	s.save()
	return true
}

// Deposit 存入一局赚到的金币并保存
// amount <= 0 时仍会保存，与每局结算都落盘的行为一致
func (s *Shop) Deposit(amount int) {
	if amount > 0 {
		s.data.TotalGold += amount
	}
	log.Printf("[Shop] Deposited %d gold (bank %d)", amount, s.data.TotalGold)
	s.save()
}

// View 返回商店界面显示数据
func (s *Shop) View() ShopView {
	nextCapLevel := s.data.CapLevel + 1
	nextDepthLevel := s.data.DepthLevel + 1
	return ShopView{
		Bank:            s.data.TotalGold,
		CapacityCurrent: s.Capacity(),
		CapacityNext:    nextCapLevel * s.tuning.CapacityPerLevel,
		CapCost:         s.CapCost(),
		MaxDepthCurrent: FormatDepth(float64(s.MaxDepth())),
		MaxDepthNext:    FormatDepth(float64(nextDepthLevel * s.tuning.DepthPerLevel)),
		DepthCost:       s.DepthCost(),
		CanBuyCapacity:  s.data.TotalGold >= s.CapCost(),
		CanBuyDepth:     s.data.TotalGold >= s.DepthCost(),
	}
}

func (s *Shop) save() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.data); err != nil {
		log.Printf("[Shop] Warning: Failed to save shop data: %v", err)
	}
}
