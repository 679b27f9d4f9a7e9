package systems

import (
	"log"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/enemies"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// PathfindingSystem 寻路调度系统
//
// 职责：
//   - 每帧只为活动列表中的一小段敌人重新计算朝向玩家的速度
//   - 使用对象池的轮询游标，跨帧依次覆盖全部敌人
//
// 每帧开销上限为 updatesPerTick 次寻路；敌人数量为 N 时，
// 每个敌人大约每 ceil(N / updatesPerTick) 帧更新一次，两次更新之间保持原速度。
// 寻路只是直线追踪，不做路径规划和避障。
type PathfindingSystem struct {
	pool           *enemies.EnemyPool
	player         game.PositionProvider
	updatesPerTick int
	enabled        bool
}

// NewPathfindingSystem 创建寻路调度系统（默认停止，由 RunState 启动）
func NewPathfindingSystem(pool *enemies.EnemyPool, player game.PositionProvider, updatesPerTick int) *PathfindingSystem {
	if updatesPerTick < 1 {
		log.Printf("[PathfindingSystem] Warning: updatesPerTick=%d, using 1", updatesPerTick)
		updatesPerTick = 1
	}
	return &PathfindingSystem{
		pool:           pool,
		player:         player,
		updatesPerTick: updatesPerTick,
	}
}

// StartPathfinding 实现 game.PathfindingController
func (s *PathfindingSystem) StartPathfinding() {
	s.enabled = true
}

// StopPathfinding 实现 game.PathfindingController
func (s *PathfindingSystem) StopPathfinding() {
	s.enabled = false
}

// IsEnabled 是否启用
func (s *PathfindingSystem) IsEnabled() bool {
	return s.enabled
}

// UpdatesPerTick 每帧最多更新的敌人数量
func (s *PathfindingSystem) UpdatesPerTick() int {
	return s.updatesPerTick
}

// Update 执行一帧寻路调度，返回本帧访问的敌人数量
func (s *PathfindingSystem) Update() int {
	if !s.enabled || s.pool.ActiveCount() == 0 {
		return 0
	}

	target := s.player.Position()
	return s.pool.VisitRoundRobin(s.updatesPerTick, func(_ enemies.Handle, enemy *components.EnemyComponent) {
		seek(enemy, target)
	})
}

// seek 设置朝向目标的直线速度
// 死亡中的敌人占用本帧名额但不再移动
func seek(enemy *components.EnemyComponent, target types.Vec2) {
	if enemy.Dying || enemy.Definition == nil {
		return
	}

	dir := target.Sub(enemy.Position).Normalize()
	enemy.Velocity = dir.Scale(enemy.Definition.MoveSpeed)
	if dir.X != 0 {
		enemy.FacingLeft = dir.X < 0
	}
}
