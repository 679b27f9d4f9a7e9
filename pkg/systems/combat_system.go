package systems

import (
	"log"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/enemies"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
)

// CombatSystem 战斗系统
//
// 职责：
//   - 对敌人造成伤害，生命归零时进入死亡状态
//   - 接触伤害：敌人贴近玩家且冷却结束时对玩家造成伤害
//   - 死亡敌人倒计时结束后回收到对象池
//
// 冷却与回收都是每帧递减的倒计时字段，不存在阻塞等待。
type CombatSystem struct {
	pool   *enemies.EnemyPool
	player PlayerTarget
	bus *game.EventBus

	contactRadius     float64
	deathDespawnDelay float64
}

// PlayerTarget 战斗系统需要的玩家能力
type PlayerTarget interface {
	game.PositionProvider
	game.DamageReceiver
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(pool *enemies.EnemyPool, player PlayerTarget, bus *game.EventBus, contactRadius, deathDespawnDelay float64) *CombatSystem {
	return &CombatSystem{
		pool:              pool,
		player:            player,
		bus:               bus,
		contactRadius:     contactRadius,
		deathDespawnDelay: deathDespawnDelay,
	}
}

// ApplyDamage 对敌人造成伤害
//
// 参数：
//   - h: 敌人句柄
//   - amount: 伤害值（负数被拒绝）
//   - source: 伤害来源（武器ID，用于统计）
//
// 返回：
//   - bool: 本次伤害是否致死
func (s *CombatSystem) ApplyDamage(h enemies.Handle, amount float64, source string) bool {
	if amount < 0 {
		log.Printf("[CombatSystem] Warning: negative damage %.2f from %s ignored", amount, source)
		return false
	}

	enemy := s.pool.Get(h)
	if enemy == nil || !enemy.Active || enemy.Dying {
		return false
	}

	enemy.Health -= amount
	enemyType := enemy.Definition.ID

	s.bus.Publish(game.Event{
		Type: game.EventEnemyDamaged,
		Data: game.EnemyDamagedData{EnemyType: enemyType, Source: source, Amount: amount},
	})

	if enemy.Health > 0 {
		return false
	}

	s.kill(enemy)
	s.bus.Publish(game.Event{
		Type: game.EventEnemyKilled,
		Data: game.EnemyKilledData{EnemyType: enemyType, Source: source},
	})
	return true
}

// kill 进入死亡状态：停止移动，开始回收倒计时
func (s *CombatSystem) kill(enemy *components.EnemyComponent) {
	enemy.Health = 0
	enemy.Dying = true
	enemy.Velocity = types.Vec2{}
	enemy.DespawnCountdown = s.deathDespawnDelay
}

// Update 处理接触伤害和死亡回收
func (s *CombatSystem) Update(deltaTime float64) {
	playerPos := s.player.Position()
	contactSq := s.contactRadius * s.contactRadius

	// 遍历快照，允许在循环中回收
	for _, h := range s.pool.ActiveHandles() {
		enemy := s.pool.Get(h)

		if enemy.Dying {
			enemy.DespawnCountdown -= deltaTime
			if enemy.DespawnCountdown <= 0 {
				s.pool.Release(h)
			}
			continue
		}

		if enemy.HitCooldown > 0 {
			enemy.HitCooldown -= deltaTime
		}

		if enemy.HitCooldown > 0 || enemy.Position.DistanceSqTo(playerPos) > contactSq {
			continue
		}

		s.player.ApplyDamage(enemy.Definition.Damage)
		enemy.HitCooldown = enemy.Definition.DamageCooldown
	}
}
