package scenes

import (
	"testing"

	"github.com/decker502/wishingwell/pkg/game"
)

func TestOverlayAlpha(t *testing.T) {
	if got := overlayAlpha(0); got != 0 {
		t.Errorf("overlayAlpha(0) = %v, want 0", got)
	}
	if got := overlayAlpha(overlayFadeSeconds); got != overlayMaxAlpha {
		t.Errorf("overlayAlpha(end) = %v, want %v", got, overlayMaxAlpha)
	}
	if got := overlayAlpha(10); got != overlayMaxAlpha {
		t.Errorf("overlayAlpha(10) = %v, want clamped %v", got, overlayMaxAlpha)
	}

	// 缓出：前半程已超过一半
	if got := overlayAlpha(overlayFadeSeconds / 2); got <= overlayMaxAlpha/2 {
		t.Errorf("overlayAlpha(half) = %v, want > %v", got, overlayMaxAlpha/2)
	}
}

func TestHeartPosition(t *testing.T) {
	// 最后一颗心固定在右侧，其余依次向左
	x2, y := heartPosition(2, 3, 480)
	x0, _ := heartPosition(0, 3, 480)
	if x2 != 410 || y != 30 {
		t.Errorf("last heart at (%v, %v), want (410, 30)", x2, y)
	}
	if x2-x0 != 2*heartSpacing {
		t.Errorf("heart spread = %v, want %v", x2-x0, 2*heartSpacing)
	}
}

func TestShopLines(t *testing.T) {
	view := game.ShopView{
		Bank:            120,
		CapacityCurrent: 10,
		CapacityNext:    20,
		CapCost:         100,
		MaxDepthCurrent: "50m",
		MaxDepthNext:    "100m",
		DepthCost:       100,
	}

	if got := capacityLine(view); got != "Bucket Capacity: 10 -> 20" {
		t.Errorf("capacityLine = %q", got)
	}
	if got := depthLine(view); got != "Max Depth: 50m -> 100m" {
		t.Errorf("depthLine = %q", got)
	}
	if got := costLabel(view.CapCost); got != "Upgrade (100 gold)" {
		t.Errorf("costLabel = %q", got)
	}
	if got := bankLine(view.Bank); got != "Bank: 120 gold" {
		t.Errorf("bankLine = %q", got)
	}
}
