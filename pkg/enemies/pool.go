// Package enemies 实现敌人对象池
//
// 对象池在创建时一次性预分配所有敌人实例，运行期间容量固定：
//   - 空闲栈（LIFO）保存未使用的槽位
//   - 活动列表按生成顺序保存正在使用的槽位
//   - 轮询游标指向活动列表中下一个待寻路的位置，跨帧保持
//
// 每个句柄在任意时刻恰好位于空闲栈或活动列表之一。
// 活动列表与游标只能通过 Acquire / Release / VisitRoundRobin 修改。
// 单线程使用，不加锁。
package enemies

import (
	"log"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/types"
)

// Handle 对象池槽位句柄，在敌人存活期间保持稳定
type Handle int

// InvalidHandle 无效句柄
const InvalidHandle Handle = -1

// EnemyPool 固定容量的敌人对象池
type EnemyPool struct {
	slots  []components.EnemyComponent
	free   []Handle // 空闲栈，栈顶在末尾
	active []Handle // 活动列表，插入顺序即生成顺序
	cursor int      // 轮询游标
}

// NewEnemyPool 创建对象池并预分配 capacity 个敌人实例
// capacity < 1 时按 1 处理
func NewEnemyPool(capacity int) *EnemyPool {
	if capacity < 1 {
		capacity = 1
	}

	p := &EnemyPool{
		slots:  make([]components.EnemyComponent, capacity),
		free:   make([]Handle, 0, capacity),
		active: make([]Handle, 0, capacity),
	}

	// 逆序入栈，使第一次 Acquire 得到槽位 0
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, Handle(i))
	}

	log.Printf("[EnemyPool] Pre-allocated %d enemy slots", capacity)
	return p
}

// Acquire 从空闲栈取出一个槽位并初始化为指定类型的敌人
//
// 参数：
//   - def: 敌人类型定义
//   - pos: 生成位置
//
// 返回：
//   - Handle: 槽位句柄
//   - bool: 空闲栈为空（容量耗尽）或 def 为 nil 时返回 false，对象池状态不变
func (p *EnemyPool) Acquire(def *config.EnemyTypeDefinition, pos types.Vec2) (Handle, bool) {
	if def == nil {
		log.Printf("[EnemyPool] Warning: Acquire called with nil enemy definition")
		return InvalidHandle, false
	}

	if len(p.free) == 0 {
		log.Printf("[EnemyPool] Failed to spawn %s, no more enemies available in the pool", def.ID)
		return InvalidHandle, false
	}

	h := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	p.slots[h] = components.EnemyComponent{
		Definition: def,
		Health:     def.Health,
		Active:     true,
		Position:   pos,
	}
	p.active = append(p.active, h)
	return h, true
}

// Release 回收敌人到空闲栈
//
// 句柄不在活动列表中时（重复回收）为空操作。
// 移除会保持其余元素的相对顺序；如果被移除的位置 <= 游标，游标减一，
// 使轮询既不会跳过滑入该位置的元素，也不会重复更新已访问的元素。
func (p *EnemyPool) Release(h Handle) {
	index := p.indexOf(h)
	if index < 0 {
		return
	}

	if index <= p.cursor {
		p.cursor--
		if p.cursor < 0 {
			p.cursor = 0
		}
	}

	p.active = append(p.active[:index], p.active[index+1:]...)
	p.slots[h].Active = false
	p.slots[h].Dying = false
	p.slots[h].Velocity = types.Vec2{}
	p.free = append(p.free, h)
}

// indexOf 返回句柄在活动列表中的位置，不存在时返回 -1
func (p *EnemyPool) indexOf(h Handle) int {
	for i, a := range p.active {
		if a == h {
			return i
		}
	}
	return -1
}

// Get 获取句柄对应的敌人实例
// 句柄越界时返回 nil；返回的实例可能处于非活动状态，调用方应检查 Active
func (p *EnemyPool) Get(h Handle) *components.EnemyComponent {
	if h < 0 || int(h) >= len(p.slots) {
		return nil
	}
	return &p.slots[h]
}

// Contains 检查句柄是否在活动列表中
func (p *EnemyPool) Contains(h Handle) bool {
	return p.indexOf(h) >= 0
}

// Capacity 返回对象池容量
func (p *EnemyPool) Capacity() int {
	return len(p.slots)
}

// ActiveCount 返回活动敌人数量
func (p *EnemyPool) ActiveCount() int {
	return len(p.active)
}

// FreeCount 返回空闲槽位数量
func (p *EnemyPool) FreeCount() int {
	return len(p.free)
}

// Cursor 返回当前轮询游标（诊断用）
func (p *EnemyPool) Cursor() int {
	return p.cursor
}

// ActiveHandles 返回活动列表的快照（按生成顺序）
// 调用方可以在遍历快照时安全地 Release
func (p *EnemyPool) ActiveHandles() []Handle {
	snapshot := make([]Handle, len(p.active))
	copy(snapshot, p.active)
	return snapshot
}

// ForEachActive 按生成顺序遍历所有活动敌人（不移动游标）
// fn 中不允许调用 Release，需要回收时先取 ActiveHandles 快照
func (p *EnemyPool) ForEachActive(fn func(h Handle, enemy *components.EnemyComponent)) {
	for _, h := range p.active {
		fn(h, &p.slots[h])
	}
}

// VisitRoundRobin 从游标处开始轮询活动列表，最多访问 limit 个敌人
//
// 游标越界时回绕到 0；本次调用中游标到达列表末尾且还有剩余次数时提前结束，
// 保证单次调用最多遍历一整轮，每个敌人最多被访问一次。
// fn 中不允许调用 Release。
//
// 返回实际访问的数量。
func (p *EnemyPool) VisitRoundRobin(limit int, fn func(h Handle, enemy *components.EnemyComponent)) int {
	if len(p.active) == 0 || limit <= 0 {
		return 0
	}

	visited := 0
	for i := 0; i < limit; i++ {
		if p.cursor >= len(p.active) {
			p.cursor = 0
		}

		h := p.active[p.cursor]
		fn(h, &p.slots[h])
		visited++
		p.cursor++

		if p.cursor >= len(p.active) && i < limit-1 {
			break
		}
	}
	return visited
}
