package components

import "github.com/gonewx/horde/pkg/config"

// RegularSpawnState 单条常规刷怪规则的运行时状态
type RegularSpawnState struct {
	// Rule 对应的配置规则
	Rule *config.RegularSpawnRule

	// Remaining 本分钟剩余生成数量（分钟开始时从 [min, max] 抽取一次）
	Remaining int

	// Timer 距上次生成经过的时间（秒）
	Timer float64

	// NextDelay 下一次生成前的等待时间（秒），每次生成后重新计算
	NextDelay float64
}

// EventSpawnInstance 一次预定的事件刷怪
type EventSpawnInstance struct {
	// Time 本分钟内的触发时间点（秒）
	Time float64

	// Rule 对应的配置规则
	Rule *config.EventSpawnRule
}

// WaveScheduleComponent 当前分钟的刷怪时间表
// 每跨过一个分钟边界整体重建，上一分钟未用完的计时器和未触发的事件全部丢弃
type WaveScheduleComponent struct {
	// Minute 当前分钟（-1 表示尚未开始）
	Minute int

	// Wave 当前分钟的配置，nil 表示本分钟没有波次
	Wave *config.MinuteWaveConfig

	// MinuteTimer 本分钟内经过的时间（秒），= 游戏时间 mod 60
	MinuteTimer float64

	// Regular 常规刷怪状态，与 Wave.RegularSpawns 一一对应
	Regular []RegularSpawnState

	// Events 事件队列，按 Time 升序排列，从头部出队
	Events []EventSpawnInstance
}
