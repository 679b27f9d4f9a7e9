package game

import "github.com/gonewx/horde/pkg/types"

// EventType 事件类型
type EventType string

const (
	EventEnemySpawned  EventType = "enemy_spawned"  // 数据：EnemySpawnedData
	EventEnemyDamaged  EventType = "enemy_damaged"  // 数据：EnemyDamagedData
	EventEnemyKilled   EventType = "enemy_killed"   // 数据：EnemyKilledData
	EventPlayerDamaged EventType = "player_damaged" // 数据：PlayerDamagedData
	EventPlayerDeath   EventType = "player_death"   // 无数据
	EventRunFinished   EventType = "run_finished"   // 数据：RunFinishedData
)

// Event 事件
type Event struct {
	Type EventType
	Data interface{}
}

// EnemySpawnedData 刷怪诊断数据
type EnemySpawnedData struct {
	EnemyType    string
	Source       types.SpawnSource
	Minute       int
	TimeInMinute float64
}

// EnemyDamagedData 敌人受伤数据
type EnemyDamagedData struct {
	EnemyType string
	Source    string // 伤害来源（武器ID）
	Amount    float64
}

// EnemyKilledData 敌人死亡数据
type EnemyKilledData struct {
	EnemyType string
	Source    string // 致命一击的来源（武器ID）
}

// PlayerDamagedData 玩家受伤数据
type PlayerDamagedData struct {
	Amount float64
	Health float64 // 受伤后的剩余生命
}

// RunFinishedData 本局结束数据
type RunFinishedData struct {
	Survived     bool
	TimeSurvived float64
}

// Listener 事件监听者
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc 函数形式的监听者
type ListenerFunc func(event Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// SubscriptionID 订阅标识，用于取消订阅
type SubscriptionID int

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// EventBus 事件总线
// 显式创建并传递给需要的模块，不存在全局实例。
// 分发是同步的，按订阅顺序依次调用监听者。
type EventBus struct {
	listeners map[EventType][]subscription
	nextID    SubscriptionID
}

// NewEventBus 创建事件总线
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]subscription),
		nextID:    1,
	}
}

// Subscribe 订阅事件，返回可用于取消订阅的标识
func (b *EventBus) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	id := b.nextID
	b.nextID++
	b.listeners[eventType] = append(b.listeners[eventType], subscription{id: id, listener: listener})
	return id
}

// Unsubscribe 取消订阅，标识不存在时为空操作
func (b *EventBus) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs := b.listeners[eventType]
	for i, sub := range subs {
		if sub.id == id {
			b.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish 发布事件，同步调用所有监听者
// 分发过程中新增的订阅从下一次发布开始生效
func (b *EventBus) Publish(event Event) {
	if b == nil {
		return
	}
	for _, sub := range b.listeners[event.Type] {
		sub.listener.OnEvent(event)
	}
}

// HasListeners 是否有监听者订阅了该事件
func (b *EventBus) HasListeners(eventType EventType) bool {
	return b != nil && len(b.listeners[eventType]) > 0
}
