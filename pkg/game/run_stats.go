package game

// RunStats 本局统计
// 订阅事件总线收集击杀与伤害数据，结算时交给 RecordsManager 更新纪录
type RunStats struct {
	StageID      string
	Survived     bool
	Kills        int
	TotalDamage  float64
	TimeSurvived float64
	Spawned      int

	DamagePerSource map[string]float64
	KillsPerSource  map[string]int
	KillsPerEnemy   map[string]int

	finished bool
	subs     map[EventType]SubscriptionID
	bus      *EventBus
}

// NewRunStats 创建本局统计
func NewRunStats(stageID string) *RunStats {
	return &RunStats{
		StageID:         stageID,
		Survived:        true,
		DamagePerSource: make(map[string]float64),
		KillsPerSource:  make(map[string]int),
		KillsPerEnemy:   make(map[string]int),
	}
}

// Reset 清空统计，开始新的一局（保留订阅）
func (s *RunStats) Reset(stageID string) {
	s.StageID = stageID
	s.Survived = true
	s.Kills = 0
	s.TotalDamage = 0
	s.TimeSurvived = 0
	s.Spawned = 0
	s.DamagePerSource = make(map[string]float64)
	s.KillsPerSource = make(map[string]int)
	s.KillsPerEnemy = make(map[string]int)
	s.finished = false
}

// Attach 订阅统计所需的事件
func (s *RunStats) Attach(bus *EventBus) {
	s.Detach()
	s.bus = bus
	s.subs = make(map[EventType]SubscriptionID)
	for _, t := range []EventType{EventEnemySpawned, EventEnemyDamaged, EventEnemyKilled, EventRunFinished} {
		s.subs[t] = bus.Subscribe(t, s)
	}
}

// Detach 取消所有订阅
func (s *RunStats) Detach() {
	if s.bus == nil {
		return
	}
	for t, id := range s.subs {
		s.bus.Unsubscribe(t, id)
	}
	s.bus = nil
	s.subs = nil
}

// RegisterDamage 记录一次伤害
func (s *RunStats) RegisterDamage(source string, amount float64) {
	s.DamagePerSource[source] += amount
	s.TotalDamage += amount
}

// RegisterKill 记录一次击杀
func (s *RunStats) RegisterKill(source, enemyType string) {
	s.Kills++
	s.KillsPerSource[source]++
	s.KillsPerEnemy[enemyType]++
}

// IsFinished 本局是否已结算
func (s *RunStats) IsFinished() bool {
	return s.finished
}

// OnEvent 实现 Listener
func (s *RunStats) OnEvent(event Event) {
	if s.finished {
		return
	}

	switch data := event.Data.(type) {
	case EnemySpawnedData:
		s.Spawned++
	case EnemyDamagedData:
		s.RegisterDamage(data.Source, data.Amount)
	case EnemyKilledData:
		s.RegisterKill(data.Source, data.EnemyType)
	case RunFinishedData:
		s.Survived = data.Survived
		s.TimeSurvived = data.TimeSurvived
		s.finished = true
	}
}
