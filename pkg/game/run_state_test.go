package game

import (
	"testing"

	"github.com/gonewx/horde/pkg/config"
)

// fakeSpawner 记录调用的刷怪器
type fakeSpawner struct {
	initialized int
	spawning    bool
	stage       *config.StageConfig
	clock       GameplayClock
}

func (f *fakeSpawner) Initialize(stage *config.StageConfig, clock GameplayClock) {
	f.initialized++
	f.stage = stage
	f.clock = clock
}
func (f *fakeSpawner) StartSpawning() { f.spawning = true }
func (f *fakeSpawner) StopSpawning()  { f.spawning = false }

type fakePathfinding struct {
	enabled bool
}

func (f *fakePathfinding) StartPathfinding() { f.enabled = true }
func (f *fakePathfinding) StopPathfinding()  { f.enabled = false }

func twoMinuteStage() *config.StageConfig {
	return &config.StageConfig{ID: "test", Minutes: make([]config.MinuteWaveConfig, 2)}
}

func newTestRunState() (*RunState, *fakeSpawner, *fakePathfinding, *EventBus) {
	bus := NewEventBus()
	sp := &fakeSpawner{}
	pf := &fakePathfinding{}
	return NewRunState(sp, pf, bus), sp, pf, bus
}

func TestRunStateStartStage(t *testing.T) {
	rs, sp, pf, _ := newTestRunState()
	stage := twoMinuteStage()

	rs.StartStage(stage)

	if rs.Phase() != PhaseActive {
		t.Fatalf("phase: got %s, want Active", rs.Phase())
	}
	if sp.initialized != 1 || sp.stage != stage || sp.clock != GameplayClock(rs) {
		t.Error("spawner should be initialized with the stage and the run clock")
	}
	if !sp.spawning || !pf.enabled {
		t.Errorf("Active should start spawning (%v) and pathfinding (%v)", sp.spawning, pf.enabled)
	}
	if rs.TimeLimit() != 120 {
		t.Errorf("TimeLimit: got %v, want 120", rs.TimeLimit())
	}
}

func TestRunStateClockOnlyAdvancesWhenActive(t *testing.T) {
	rs, _, _, _ := newTestRunState()

	rs.Update(1)
	if rs.GameplayTime() != 0 {
		t.Error("clock should not advance before the stage starts")
	}

	rs.StartStage(twoMinuteStage())
	rs.Update(1.5)
	rs.TogglePause()
	rs.Update(10)
	rs.TogglePause()
	rs.Update(0.5)

	if rs.GameplayTime() != 2 {
		t.Errorf("GameplayTime: got %v, want 2", rs.GameplayTime())
	}
}

func TestRunStateTransitions(t *testing.T) {
	rs, sp, pf, _ := newTestRunState()
	rs.StartStage(twoMinuteStage())

	rs.TogglePause()
	if rs.Phase() != PhasePause || sp.spawning || pf.enabled {
		t.Errorf("Pause: phase=%s spawning=%v pathfinding=%v", rs.Phase(), sp.spawning, pf.enabled)
	}

	rs.TogglePause()
	if rs.Phase() != PhaseActive || !sp.spawning || !pf.enabled {
		t.Errorf("resume: phase=%s spawning=%v pathfinding=%v", rs.Phase(), sp.spawning, pf.enabled)
	}

	rs.EnterLevelUp()
	if rs.Phase() != PhaseLevelUp || sp.spawning || pf.enabled {
		t.Errorf("LevelUp: phase=%s spawning=%v pathfinding=%v", rs.Phase(), sp.spawning, pf.enabled)
	}

	// 升级菜单中不能暂停
	rs.TogglePause()
	if rs.Phase() != PhaseLevelUp {
		t.Errorf("TogglePause during level up changed phase to %s", rs.Phase())
	}

	rs.ResumeFromLevelUp()
	if rs.Phase() != PhaseActive {
		t.Errorf("ResumeFromLevelUp: phase=%s", rs.Phase())
	}
}

func TestRunStateFinishOnTimeLimit(t *testing.T) {
	rs, sp, pf, bus := newTestRunState()
	var finished []RunFinishedData
	bus.Subscribe(EventRunFinished, ListenerFunc(func(e Event) {
		finished = append(finished, e.Data.(RunFinishedData))
	}))

	rs.StartStage(twoMinuteStage())
	for i := 0; i < 121; i++ {
		rs.Update(1)
	}

	if rs.Phase() != PhaseFinish {
		t.Fatalf("phase: got %s, want Finish", rs.Phase())
	}
	if sp.spawning || pf.enabled {
		t.Error("Finish should stop spawning and pathfinding")
	}
	if len(finished) != 1 || !finished[0].Survived || finished[0].TimeSurvived != 120 {
		t.Errorf("RunFinished events: %+v", finished)
	}

	// 结算后忽略其他切换
	rs.TogglePause()
	rs.ChangePhase(PhaseActive)
	if rs.Phase() != PhaseFinish {
		t.Errorf("phase after finish: got %s", rs.Phase())
	}
}

func TestRunStatePlayerDeath(t *testing.T) {
	rs, _, _, bus := newTestRunState()
	rs.StartStage(twoMinuteStage())
	rs.Update(30)

	player := NewPlayerState(10, 1, bus)
	player.ApplyDamage(10)

	if rs.Phase() != PhaseFinish || !rs.IsGameOver() {
		t.Errorf("after death: phase=%s gameOver=%v", rs.Phase(), rs.IsGameOver())
	}
}

func TestRunStateRestart(t *testing.T) {
	rs, sp, _, _ := newTestRunState()
	rs.StartStage(twoMinuteStage())
	rs.Update(200)

	rs.StartStage(twoMinuteStage())
	if rs.Phase() != PhaseActive || rs.GameplayTime() != 0 || rs.IsGameOver() {
		t.Errorf("restart: phase=%s time=%v gameOver=%v", rs.Phase(), rs.GameplayTime(), rs.IsGameOver())
	}
	if sp.initialized != 2 {
		t.Errorf("spawner initialized %d times, want 2", sp.initialized)
	}
}
