package systems

import (
	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/enemies"
)

// MovementSystem 每帧按速度积分所有活动敌人的位置
// 速度由 PathfindingSystem 分帧更新，这里每帧都执行
type MovementSystem struct {
	pool *enemies.EnemyPool
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(pool *enemies.EnemyPool) *MovementSystem {
	return &MovementSystem{pool: pool}
}

// Update 积分位置
func (s *MovementSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.pool.ForEachActive(func(_ enemies.Handle, enemy *components.EnemyComponent) {
		if enemy.Dying {
			return
		}
		enemy.Position = enemy.Position.Add(enemy.Velocity.Scale(deltaTime))
	})
}
