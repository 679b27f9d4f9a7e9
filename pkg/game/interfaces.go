package game

import (
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/types"
)

// PositionProvider 提供玩家当前位置
// 每次需要距离计算或环形刷怪位置时查询，不缓存
type PositionProvider interface {
	Position() types.Vec2
}

// GameplayClock 游戏计时器
// 返回单调递增的游戏时间（秒）；暂停通过不推进时间实现
type GameplayClock interface {
	GameplayTime() float64
}

// DamageReceiver 可受伤的目标（玩家）
type DamageReceiver interface {
	ApplyDamage(amount float64)
}

// StageSpawner 由运行状态机控制的刷怪器
type StageSpawner interface {
	Initialize(stage *config.StageConfig, clock GameplayClock)
	StartSpawning()
	StopSpawning()
}

// PathfindingController 由运行状态机控制的寻路调度器
type PathfindingController interface {
	StartPathfinding()
	StopPathfinding()
}
