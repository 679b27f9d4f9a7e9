package game

import (
	"log"

	"github.com/gonewx/horde/pkg/types"
)

// PlayerState 玩家状态
// 敌人核心只通过 PositionProvider / DamageReceiver 两个接口访问玩家；
// 输入、升级、武器等由外部模块负责
type PlayerState struct {
	position  types.Vec2
	health    float64
	maxHealth float64
	moveSpeed float64
	dead      bool

	bus *EventBus
}

// NewPlayerState 创建玩家状态
func NewPlayerState(maxHealth, moveSpeed float64, bus *EventBus) *PlayerState {
	return &PlayerState{
		health:    maxHealth,
		maxHealth: maxHealth,
		moveSpeed: moveSpeed,
		bus:       bus,
	}
}

// Position 实现 PositionProvider
func (p *PlayerState) Position() types.Vec2 {
	return p.position
}

// SetPosition 直接设置位置
func (p *PlayerState) SetPosition(pos types.Vec2) {
	p.position = pos
}

// Move 按方向移动（方向会被归一化），死亡后不再移动
func (p *PlayerState) Move(dir types.Vec2, deltaTime float64) {
	if p.dead {
		return
	}
	p.position = p.position.Add(dir.Normalize().Scale(p.moveSpeed * deltaTime))
}

// Health 当前生命值
func (p *PlayerState) Health() float64 {
	return p.health
}

// MaxHealth 最大生命值
func (p *PlayerState) MaxHealth() float64 {
	return p.maxHealth
}

// IsDead 是否已死亡
func (p *PlayerState) IsDead() bool {
	return p.dead
}

// ApplyDamage 实现 DamageReceiver
// 生命归零时发布一次 EventPlayerDeath
func (p *PlayerState) ApplyDamage(amount float64) {
	if p.dead || amount <= 0 {
		return
	}

	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}

	p.bus.Publish(Event{
		Type: EventPlayerDamaged,
		Data: PlayerDamagedData{Amount: amount, Health: p.health},
	})

	if p.health == 0 {
		p.dead = true
		log.Printf("[PlayerState] Player died")
		p.bus.Publish(Event{Type: EventPlayerDeath})
	}
}

// Reset 恢复到初始状态（重新开始本局）
func (p *PlayerState) Reset() {
	p.position = types.Vec2{}
	p.health = p.maxHealth
	p.dead = false
}
