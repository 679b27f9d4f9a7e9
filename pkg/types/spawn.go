package types

// SpawnSource 生成来源（用于调试日志和统计）
type SpawnSource string

const (
	SpawnSourceRegular SpawnSource = "regular" // 常规刷怪（按随机间隔逐个生成）
	SpawnSourceEvent   SpawnSource = "event"   // 事件刷怪（在预定时间点一次性生成一批）
)

// SpawnPattern 事件刷怪的阵型标签
// 目前所有阵型都落在玩家周围的刷怪环上，标签保留给后续阵型实现
type SpawnPattern string

const (
	SpawnPatternCircle    SpawnPattern = "circle"
	SpawnPatternRectangle SpawnPattern = "rectangle"
)

// IsValid 检查阵型标签是否合法
func (p SpawnPattern) IsValid() bool {
	switch p {
	case SpawnPatternCircle, SpawnPatternRectangle:
		return true
	}
	return false
}
