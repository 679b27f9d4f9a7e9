package systems

import "github.com/gonewx/horde/pkg/enemies"

// WeaponSystem 自动武器（演示与模拟用的替身）
// 每隔 interval 秒通过目标查询服务选出目标并造成伤害
type WeaponSystem struct {
	combat *CombatSystem
	query  *TargetQuery

	source   string
	interval float64
	damage   float64
	targets  int
	radius   float64 // > 0 时在半径内随机选目标，否则选最近的目标

	timer float64
}

// NewWeaponSystem 创建自动武器
func NewWeaponSystem(combat *CombatSystem, query *TargetQuery, source string, interval, damage float64, targets int) *WeaponSystem {
	return &WeaponSystem{
		combat:   combat,
		query:    query,
		source:   source,
		interval: interval,
		damage:   damage,
		targets:  targets,
	}
}

// SetRadius 改为在半径内随机选择目标
func (w *WeaponSystem) SetRadius(radius float64) {
	w.radius = radius
}

// Update 推进冷却，冷却结束时开火，返回本帧击杀数
func (w *WeaponSystem) Update(deltaTime float64) int {
	if w.interval <= 0 {
		return 0
	}

	w.timer += deltaTime
	if w.timer < w.interval {
		return 0
	}
	w.timer -= w.interval

	var targets []enemies.Handle
	if w.radius > 0 {
		targets = w.query.RandomHandlesWithinRadius(w.targets, w.radius)
	} else {
		targets = w.query.ClosestHandles(w.targets)
	}

	kills := 0
	for _, h := range targets {
		if w.combat.ApplyDamage(h, w.damage, w.source) {
			kills++
		}
	}
	return kills
}
