package systems

import (
	"log"
	"math"
	"sort"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/enemies"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
	"github.com/gonewx/horde/pkg/utils"
)

const (
	// secondsPerMinute 波次配置按 60 秒一段索引
	secondsPerMinute = 60.0

	// eventSpawnWindow 事件刷怪的触发时间在 [0, eventSpawnWindow) 内抽取
	eventSpawnWindow = 58.0

	// noSpawnDelay 剩余数量为 0 时的等待时间，相当于本分钟不再生成
	noSpawnDelay = 999.0
)

// WaveSpawnSystem 波次刷怪系统
//
// 职责：
//   - 根据游戏时钟推导当前分钟，跨分钟时重建刷怪时间表
//   - 常规刷怪：按自适应的随机间隔逐个生成
//   - 事件刷怪：在预先抽取的时间点一次性生成一批
//   - 所有敌人从对象池获取，生成在玩家周围的刷怪环上
//
// 架构说明：
//   - 实现 game.StageSpawner，由 RunState 初始化和启停
//   - 游戏时钟由 RunState 持有，暂停通过时钟不推进实现
//   - 每帧内先处理常规刷怪，再处理事件刷怪
type WaveSpawnSystem struct {
	pool   *enemies.EnemyPool
	stats  *config.EnemyStatsConfig
	player game.PositionProvider
	rng    utils.Random
	bus    *game.EventBus

	stage *config.StageConfig
	clock game.GameplayClock

	schedule     components.WaveScheduleComponent
	spawning     bool
	spawnLogging bool
}

// NewWaveSpawnSystem 创建波次刷怪系统
//
// 参数：
//
//	pool   - 敌人对象池（唯一的生产者是本系统）
//	stats  - 敌人类型定义
//	player - 玩家位置来源（刷怪环的圆心）
//	rng    - 随机数来源
//	bus    - 事件总线，每次生成发布 EventEnemySpawned，可为 nil
func NewWaveSpawnSystem(pool *enemies.EnemyPool, stats *config.EnemyStatsConfig, player game.PositionProvider, rng utils.Random, bus *game.EventBus) *WaveSpawnSystem {
	s := &WaveSpawnSystem{
		pool:   pool,
		stats:  stats,
		player: player,
		rng:    rng,
		bus:    bus,
	}
	s.resetSchedule(-1)
	return s
}

// SetSpawnLogging 开关每次生成的调试日志
func (s *WaveSpawnSystem) SetSpawnLogging(enabled bool) {
	s.spawnLogging = enabled
}

// Initialize 实现 game.StageSpawner
// 绑定关卡与时钟并从第 -1 分钟重新开始，保证第一帧一定会建立第 0 分钟的时间表。
// 关卡或时钟缺失时输出一次警告，之后 StartSpawning 不会生效。
func (s *WaveSpawnSystem) Initialize(stage *config.StageConfig, clock game.GameplayClock) {
	s.stage = stage
	s.clock = clock
	s.spawning = false
	s.resetSchedule(-1)

	if stage == nil || clock == nil {
		log.Printf("[WaveSpawnSystem] Warning: stage or gameplay clock missing (stage=%v, clock=%v), spawning disabled",
			stage != nil, clock != nil)
		return
	}

	log.Printf("[WaveSpawnSystem] Initialized stage %q: %d minutes, spawn radius %.1f",
		stage.ID, stage.DurationMinutes(), stage.SpawnRadius)
}

// StartSpawning 实现 game.StageSpawner
func (s *WaveSpawnSystem) StartSpawning() {
	if s.stage == nil || s.clock == nil {
		return
	}
	s.spawning = true
}

// StopSpawning 实现 game.StageSpawner
// 不清除任何状态，再次启动后从原处继续
func (s *WaveSpawnSystem) StopSpawning() {
	s.spawning = false
}

// IsSpawning 是否正在刷怪
func (s *WaveSpawnSystem) IsSpawning() bool {
	return s.spawning
}

// Schedule 当前分钟的刷怪时间表（只读，诊断与测试用）
func (s *WaveSpawnSystem) Schedule() *components.WaveScheduleComponent {
	return &s.schedule
}

// Update 执行一帧刷怪
func (s *WaveSpawnSystem) Update(deltaTime float64) {
	if !s.spawning {
		return
	}

	now := s.clock.GameplayTime()
	minute := int(math.Floor(now / secondsPerMinute))

	// 先更新分钟内计时，新分钟的第一个间隔基于当前时间计算
	s.schedule.MinuteTimer = math.Mod(now, secondsPerMinute)

	if minute != s.schedule.Minute {
		s.SetupMinute(minute)
	}

	if s.schedule.Wave == nil {
		return
	}

	s.updateRegularSpawns(deltaTime)
	s.updateEventSpawns()
}

// SetupMinute 重建指定分钟的刷怪时间表
// 上一分钟剩余的计时器和未触发的事件全部丢弃；
// 分钟为负或超出关卡时间线时本分钟没有波次。
func (s *WaveSpawnSystem) SetupMinute(minute int) {
	s.resetSchedule(minute)

	wave, ok := s.stage.Minute(minute)
	if !ok {
		log.Printf("[WaveSpawnSystem] Minute %d has no wave (stage length %d)", minute, s.stage.DurationMinutes())
		return
	}

	s.schedule.Wave = wave

	s.schedule.Regular = make([]components.RegularSpawnState, len(wave.RegularSpawns))
	for i := range wave.RegularSpawns {
		rule := &wave.RegularSpawns[i]
		state := &s.schedule.Regular[i]
		state.Rule = rule
		state.Remaining = s.rng.RangeInt(rule.MinSpawns, rule.MaxSpawns)
		state.NextDelay = s.calculateNextDelay(state.Remaining)
	}

	s.setupEventSpawns(wave)

	log.Printf("[WaveSpawnSystem] Minute %d: %d regular rules, %d events scheduled",
		minute, len(s.schedule.Regular), len(s.schedule.Events))
}

func (s *WaveSpawnSystem) resetSchedule(minute int) {
	s.schedule.Minute = minute
	s.schedule.Wave = nil
	s.schedule.Regular = nil
	s.schedule.Events = nil
}

// calculateNextDelay 计算下一次常规刷怪的等待时间
// 平均间隔 = 本分钟剩余时间 / 剩余数量，实际间隔在平均值的 0.5~1.5 倍之间随机
func (s *WaveSpawnSystem) calculateNextDelay(remaining int) float64 {
	if remaining <= 0 {
		return noSpawnDelay
	}

	timeLeft := math.Max(1, secondsPerMinute-s.schedule.MinuteTimer)
	avg := timeLeft / float64(remaining)
	return s.rng.RangeFloat(0.5*avg, 1.5*avg)
}

// setupEventSpawns 抽取本分钟所有事件的触发时间，按时间升序排成队列
func (s *WaveSpawnSystem) setupEventSpawns(wave *config.MinuteWaveConfig) {
	var events []components.EventSpawnInstance

	for i := range wave.EventSpawns {
		rule := &wave.EventSpawns[i]
		count := s.rng.RangeInt(rule.MinEvents, rule.MaxEvents)
		for j := 0; j < count; j++ {
			events = append(events, components.EventSpawnInstance{
				Time: s.rng.RangeFloat(0, eventSpawnWindow),
				Rule: rule,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	s.schedule.Events = events
}

func (s *WaveSpawnSystem) updateRegularSpawns(deltaTime float64) {
	for i := range s.schedule.Regular {
		state := &s.schedule.Regular[i]
		if state.Remaining <= 0 {
			continue
		}

		state.Timer += deltaTime
		if state.Timer < state.NextDelay {
			continue
		}

		s.spawnEnemy(state.Rule.Enemy, types.SpawnSourceRegular)
		state.Remaining--
		state.Timer = 0
		state.NextDelay = s.calculateNextDelay(state.Remaining)
	}
}

// updateEventSpawns 依次弹出所有已到时间的事件，每个事件一次性生成整批敌人
func (s *WaveSpawnSystem) updateEventSpawns() {
	for len(s.schedule.Events) > 0 && s.schedule.Events[0].Time <= s.schedule.MinuteTimer {
		event := s.schedule.Events[0]
		s.schedule.Events = s.schedule.Events[1:]

		if s.spawnLogging {
			log.Printf("[WaveSpawnSystem] Event triggered: %d x %s (pattern=%s) at %.2fs",
				event.Rule.BurstSize, event.Rule.Enemy, event.Rule.Pattern, s.schedule.MinuteTimer)
		}

		for i := 0; i < event.Rule.BurstSize; i++ {
			s.spawnEnemy(event.Rule.Enemy, types.SpawnSourceEvent)
		}
	}
}

// randomSpawnPosition 刷怪环上的随机位置：以玩家为圆心、SpawnRadius 为半径、角度均匀随机
// 目前所有阵型标签都使用刷怪环
func (s *WaveSpawnSystem) randomSpawnPosition() types.Vec2 {
	angle := s.rng.RangeFloat(0, 2*math.Pi)
	return s.player.Position().Add(types.FromAngle(angle, s.stage.SpawnRadius))
}

// spawnEnemy 从对象池生成一个敌人
// 未知类型或对象池已满时跳过本次生成（对象池会输出日志）
func (s *WaveSpawnSystem) spawnEnemy(enemyID string, source types.SpawnSource) (enemies.Handle, bool) {
	def, ok := s.stats.Get(enemyID)
	if !ok {
		log.Printf("[WaveSpawnSystem] Unknown enemy type %q, spawn skipped", enemyID)
		return enemies.InvalidHandle, false
	}

	h, ok := s.pool.Acquire(def, s.randomSpawnPosition())
	if !ok {
		return enemies.InvalidHandle, false
	}

	if s.spawnLogging {
		log.Printf("[WaveSpawnSystem] Spawned %s (source=%s, minute=%d, t=%.2fs, handle=%d)",
			enemyID, source, s.schedule.Minute, s.schedule.MinuteTimer, h)
	}

	s.bus.Publish(game.Event{
		Type: game.EventEnemySpawned,
		Data: game.EnemySpawnedData{
			EnemyType:    enemyID,
			Source:       source,
			Minute:       s.schedule.Minute,
			TimeInMinute: s.schedule.MinuteTimer,
		},
	})
	return h, true
}
