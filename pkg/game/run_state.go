package game

import (
	"log"

	"github.com/gonewx/horde/pkg/config"
)

// RunPhase 本局所处阶段
type RunPhase int

const (
	PhaseNone    RunPhase = iota // 尚未开始
	PhaseActive                  // 进行中：计时推进、刷怪、寻路
	PhasePause                   // 暂停菜单
	PhaseLevelUp                 // 升级选择
	PhaseFinish                  // 结算（胜利或死亡）
)

// String 返回阶段名称（日志用）
func (p RunPhase) String() string {
	switch p {
	case PhaseActive:
		return "Active"
	case PhasePause:
		return "Pause"
	case PhaseLevelUp:
		return "LevelUp"
	case PhaseFinish:
		return "Finish"
	}
	return "None"
}

// RunState 本局状态机
//
// 职责：
//   - 持有游戏计时器（只在 Active 阶段推进），实现 GameplayClock
//   - 在阶段切换时启停刷怪器和寻路调度器
//   - 计时到达关卡时长或玩家死亡时进入结算
type RunState struct {
	phase         RunPhase
	gameplayTimer float64
	timeLimit     float64
	gameOver      bool

	spawner     StageSpawner
	pathfinding PathfindingController
	bus         *EventBus
}

// NewRunState 创建本局状态机并订阅玩家死亡事件
func NewRunState(spawner StageSpawner, pathfinding PathfindingController, bus *EventBus) *RunState {
	r := &RunState{
		phase:       PhaseNone,
		spawner:     spawner,
		pathfinding: pathfinding,
		bus:         bus,
	}
	if bus != nil {
		bus.Subscribe(EventPlayerDeath, r)
	}
	return r
}

// StartStage 开始关卡：重置计时器、初始化刷怪器并进入 Active
func (r *RunState) StartStage(stage *config.StageConfig) {
	log.Printf("[RunState] Starting stage %q", stageID(stage))

	r.gameplayTimer = 0
	r.timeLimit = float64(stage.DurationMinutes()) * 60
	r.gameOver = false

	// 先离开当前阶段，保证重新开始时刷怪器处于停止状态
	r.exitPhase(r.phase)
	r.phase = PhaseNone

	r.spawner.Initialize(stage, r)
	r.ChangePhase(PhaseActive)
}

func stageID(stage *config.StageConfig) string {
	if stage == nil {
		return ""
	}
	return stage.ID
}

// Update 推进游戏计时器
// 只在 Active 阶段计时；到达时长上限时进入结算
func (r *RunState) Update(deltaTime float64) {
	if r.phase != PhaseActive {
		return
	}

	r.gameplayTimer += deltaTime

	if r.gameplayTimer >= r.timeLimit {
		r.ChangePhase(PhaseFinish)
	}
}

// ChangePhase 切换阶段
// 结算阶段只能通过 StartStage 离开
func (r *RunState) ChangePhase(next RunPhase) {
	if r.phase == next {
		return
	}
	if r.phase == PhaseFinish {
		log.Printf("[RunState] Ignoring transition to %s after finish", next)
		return
	}

	r.exitPhase(r.phase)
	r.phase = next
	r.enterPhase(next)

	log.Printf("[RunState] Entered phase: %s", next)
}

func (r *RunState) enterPhase(p RunPhase) {
	switch p {
	case PhaseActive:
		r.spawner.StartSpawning()
		r.pathfinding.StartPathfinding()
	case PhasePause, PhaseLevelUp:
		r.pathfinding.StopPathfinding()
	case PhaseFinish:
		r.spawner.StopSpawning()
		r.pathfinding.StopPathfinding()
		r.bus.Publish(Event{
			Type: EventRunFinished,
			Data: RunFinishedData{Survived: !r.gameOver, TimeSurvived: r.gameplayTimer},
		})
	}
}

func (r *RunState) exitPhase(p RunPhase) {
	if p == PhaseActive {
		r.spawner.StopSpawning()
	}
}

// TogglePause 在 Active 与 Pause 之间切换，其他阶段忽略
func (r *RunState) TogglePause() {
	switch r.phase {
	case PhaseActive:
		r.ChangePhase(PhasePause)
	case PhasePause:
		r.ChangePhase(PhaseActive)
	}
}

// EnterLevelUp 玩家升级，进入升级选择（仅 Active 阶段有效）
func (r *RunState) EnterLevelUp() {
	if r.phase == PhaseActive {
		r.ChangePhase(PhaseLevelUp)
	}
}

// ResumeFromLevelUp 完成升级选择，回到 Active
func (r *RunState) ResumeFromLevelUp() {
	if r.phase == PhaseLevelUp {
		r.ChangePhase(PhaseActive)
	}
}

// OnEvent 实现 Listener：玩家死亡时结束本局
func (r *RunState) OnEvent(event Event) {
	if event.Type != EventPlayerDeath || r.phase == PhaseFinish || r.phase == PhaseNone {
		return
	}
	log.Printf("[RunState] Player death registered")
	r.gameOver = true
	r.ChangePhase(PhaseFinish)
}

// GameplayTime 实现 GameplayClock
func (r *RunState) GameplayTime() float64 {
	return r.gameplayTimer
}

// Phase 当前阶段
func (r *RunState) Phase() RunPhase {
	return r.phase
}

// IsGameOver 本局是否因玩家死亡结束
func (r *RunState) IsGameOver() bool {
	return r.gameOver
}

// TimeLimit 关卡时长（秒）
func (r *RunState) TimeLimit() float64 {
	return r.timeLimit
}
