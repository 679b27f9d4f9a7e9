// Package modules 把敌人核心的各个系统组装成可直接驱动的模块
//
// HordeModule 不依赖渲染层，桌面演示（pkg/scenes）和无界面模拟器（cmd/wavesim）共用。
package modules

import (
	"log"

	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/enemies"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/systems"
	"github.com/gonewx/horde/pkg/utils"
)

// 替身武器参数
const (
	whipSource   = "whip"
	whipInterval = 1.0
	whipDamage   = 10.0
	whipTargets  = 2

	garlicSource   = "garlic"
	garlicInterval = 0.5
	garlicDamage   = 4.0
	garlicTargets  = 8
	garlicRadius   = 2.5
)

// HordeModuleConfig 模块配置
type HordeModuleConfig struct {
	Horde   *config.HordeConfig
	Stats   *config.EnemyStatsConfig
	RNG     utils.Random
	Records *game.RecordsManager // 可为 nil，不记录
	Weapons bool                 // 是否装备替身武器
}

// HordeModule 敌人核心模块
//
// 职责：
//   - 按依赖顺序创建对象池、各系统和本局状态机
//   - 按固定顺序驱动每帧更新
//   - 本局结束时把统计写入纪录
//
// 每帧顺序：时钟 -> 刷怪 -> 寻路 -> 移动 -> 武器 -> 战斗（接触伤害与回收）
type HordeModule struct {
	horde *config.HordeConfig
	stats *config.EnemyStatsConfig

	bus    *game.EventBus
	pool   *enemies.EnemyPool
	player *game.PlayerState

	spawner     *systems.WaveSpawnSystem
	pathfinding *systems.PathfindingSystem
	movement    *systems.MovementSystem
	combat      *systems.CombatSystem
	query       *systems.TargetQuery
	weapons     []*systems.WeaponSystem

	runState *game.RunState
	runStats *game.RunStats
	records  *game.RecordsManager

	stage        *config.StageConfig
	lastImproved []string
}

// NewHordeModule 创建模块
func NewHordeModule(cfg HordeModuleConfig) *HordeModule {
	horde := cfg.Horde
	if horde == nil {
		horde = config.DefaultHordeConfig()
	}

	m := &HordeModule{
		horde:   horde,
		stats:   cfg.Stats,
		bus:     game.NewEventBus(),
		records: cfg.Records,
	}

	m.pool = enemies.NewEnemyPool(horde.Pool.Capacity)
	m.player = game.NewPlayerState(horde.Player.MaxHealth, horde.Player.MoveSpeed, m.bus)

	m.spawner = systems.NewWaveSpawnSystem(m.pool, cfg.Stats, m.player, cfg.RNG, m.bus)
	m.spawner.SetSpawnLogging(horde.Debug.SpawnLogging)
	m.pathfinding = systems.NewPathfindingSystem(m.pool, m.player, horde.Pool.UpdatesPerTick)
	m.movement = systems.NewMovementSystem(m.pool)
	m.combat = systems.NewCombatSystem(m.pool, m.player, m.bus, horde.Combat.ContactRadius, horde.Combat.DeathDespawnDelay)
	m.query = systems.NewTargetQuery(m.pool, m.player, cfg.RNG)

	if cfg.Weapons {
		m.weapons = append(m.weapons,
			systems.NewWeaponSystem(m.combat, m.query, whipSource, whipInterval, whipDamage, whipTargets))
		garlic := systems.NewWeaponSystem(m.combat, m.query, garlicSource, garlicInterval, garlicDamage, garlicTargets)
		garlic.SetRadius(garlicRadius)
		m.weapons = append(m.weapons, garlic)
	}

	m.runState = game.NewRunState(m.spawner, m.pathfinding, m.bus)

	// 统计先于此监听者订阅，结算时统计已更新
	m.runStats = game.NewRunStats("")
	m.runStats.Attach(m.bus)
	m.bus.Subscribe(game.EventRunFinished, game.ListenerFunc(m.onRunFinished))

	return m
}

// StartStage 开始（或重新开始）关卡
// 已存活的敌人全部回收，玩家复位
func (m *HordeModule) StartStage(stage *config.StageConfig) {
	for _, h := range m.pool.ActiveHandles() {
		m.pool.Release(h)
	}
	m.player.Reset()

	m.stage = stage
	m.lastImproved = nil

	m.runStats.Reset(stage.ID)

	m.runState.StartStage(stage)
}

// Update 推进一帧
func (m *HordeModule) Update(deltaTime float64) {
	m.runState.Update(deltaTime)

	if m.runState.Phase() != game.PhaseActive {
		return
	}

	m.spawner.Update(deltaTime)
	m.pathfinding.Update()
	m.movement.Update(deltaTime)
	for _, w := range m.weapons {
		w.Update(deltaTime)
	}
	m.combat.Update(deltaTime)
}

func (m *HordeModule) onRunFinished(event game.Event) {
	data, ok := event.Data.(game.RunFinishedData)
	if !ok {
		return
	}

	log.Printf("[HordeModule] Run finished: survived=%v, time=%.1fs, kills=%d, spawned=%d",
		data.Survived, data.TimeSurvived, m.runStats.Kills, m.runStats.Spawned)

	if m.records == nil {
		return
	}

	m.lastImproved = m.records.ApplyRun(m.runStats)
	if err := m.records.Save(); err != nil {
		log.Printf("[HordeModule] Warning: failed to save records: %v", err)
	}
}

// Pool 敌人对象池
func (m *HordeModule) Pool() *enemies.EnemyPool { return m.pool }

// Player 玩家状态
func (m *HordeModule) Player() *game.PlayerState { return m.player }

// RunState 本局状态机
func (m *HordeModule) RunState() *game.RunState { return m.runState }

// RunStats 本局统计
func (m *HordeModule) RunStats() *game.RunStats { return m.runStats }

// Spawner 波次刷怪系统
func (m *HordeModule) Spawner() *systems.WaveSpawnSystem { return m.spawner }

// Query 目标查询服务
func (m *HordeModule) Query() *systems.TargetQuery { return m.query }

// Combat 战斗系统
func (m *HordeModule) Combat() *systems.CombatSystem { return m.combat }

// Bus 事件总线
func (m *HordeModule) Bus() *game.EventBus { return m.bus }

// Stage 当前关卡
func (m *HordeModule) Stage() *config.StageConfig { return m.stage }

// Records 纪录管理器（可能为 nil）
func (m *HordeModule) Records() *game.RecordsManager { return m.records }

// LastImproved 上一局刷新的纪录名称
func (m *HordeModule) LastImproved() []string { return m.lastImproved }
