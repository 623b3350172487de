package game

// RunState 游戏主状态
// 任意时刻只处于其中一个状态
type RunState int

const (
	// StateMenu 主菜单（含商店界面），不模拟也不绘制井内世界
	StateMenu RunState = iota
	// StatePlaying 下潜中：深度增长、生成金币和落石、结算碰撞
	StatePlaying
	// StateReturning 上升中：深度减少，不生成也不结算碰撞
	StateReturning
	// StateGameOver 本局结束，等待重新开始或返回菜单
	StateGameOver
)

// String 返回状态名，用于日志
func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StateReturning:
		return "RETURNING"
	case StateGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// IsActive 返回该状态下是否模拟并绘制井内世界
func (s RunState) IsActive() bool {
	return s == StatePlaying || s == StateReturning
}
