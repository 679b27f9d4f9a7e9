package systems

import (
	"sort"

	"github.com/gonewx/horde/pkg/enemies"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/types"
	"github.com/gonewx/horde/pkg/utils"
)

// TargetQuery 目标查询服务
// 对活动列表的只读空间查询，供武器和瞄准逻辑选择目标
type TargetQuery struct {
	pool   *enemies.EnemyPool
	player game.PositionProvider
	rng    utils.Random
}

// NewTargetQuery 创建目标查询服务
func NewTargetQuery(pool *enemies.EnemyPool, player game.PositionProvider, rng utils.Random) *TargetQuery {
	return &TargetQuery{
		pool:   pool,
		player: player,
		rng:    rng,
	}
}

// ClosestN 返回距离玩家最近的 n 个敌人的位置，按距离升序
// 结果长度为 min(n, 活动数量)
func (q *TargetQuery) ClosestN(n int) []types.Vec2 {
	return q.positions(q.ClosestHandles(n))
}

// ClosestHandles 同 ClosestN，返回句柄
// 距离相同时保持活动列表中的顺序
func (q *TargetQuery) ClosestHandles(n int) []enemies.Handle {
	if n <= 0 {
		return nil
	}

	handles := q.pool.ActiveHandles()
	if len(handles) == 0 {
		return nil
	}

	type ranked struct {
		handle enemies.Handle
		distSq float64
	}

	origin := q.player.Position()
	snapshot := make([]ranked, len(handles))
	for i, h := range handles {
		snapshot[i] = ranked{handle: h, distSq: q.pool.Get(h).Position.DistanceSqTo(origin)}
	}

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].distSq < snapshot[j].distSq
	})

	if n > len(snapshot) {
		n = len(snapshot)
	}
	result := make([]enemies.Handle, n)
	for i := range result {
		result[i] = snapshot[i].handle
	}
	return result
}

// RandomWithinRadius 随机返回最多 n 个距离玩家不超过 radius 的敌人位置
//
// 每次从候选池中随机抽取一个敌人，在半径内则接受；
// 无论是否接受，抽中的候选都会从池中移除，直到凑满 n 个或候选耗尽。
// 因此即使存在 n 个符合条件的敌人，结果也可能少于 n 个。
func (q *TargetQuery) RandomWithinRadius(n int, radius float64) []types.Vec2 {
	return q.positions(q.RandomHandlesWithinRadius(n, radius))
}

// RandomHandlesWithinRadius 同 RandomWithinRadius，返回句柄
func (q *TargetQuery) RandomHandlesWithinRadius(n int, radius float64) []enemies.Handle {
	if n <= 0 || radius < 0 {
		return nil
	}

	candidates := q.pool.ActiveHandles()
	origin := q.player.Position()
	radiusSq := radius * radius

	var result []enemies.Handle
	for len(result) < n && len(candidates) > 0 {
		i := q.rng.Intn(len(candidates))
		h := candidates[i]

		// 交换到末尾再截断，O(1) 移除
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]

		if q.pool.Get(h).Position.DistanceSqTo(origin) <= radiusSq {
			result = append(result, h)
		}
	}
	return result
}

func (q *TargetQuery) positions(handles []enemies.Handle) []types.Vec2 {
	if len(handles) == 0 {
		return []types.Vec2{}
	}
	out := make([]types.Vec2, len(handles))
	for i, h := range handles {
		out[i] = q.pool.Get(h).Position
	}
	return out
}
