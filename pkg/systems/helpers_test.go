package systems

import (
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/types"
)

// stubRandom 可预测的随机数来源
// RangeFloat 返回 min + f*(max-min)，f 先依次取 fracs，用完后固定为 frac
type stubRandom struct {
	frac  float64
	fracs []float64
	intn  int
}

func (r *stubRandom) next() float64 {
	if len(r.fracs) > 0 {
		f := r.fracs[0]
		r.fracs = r.fracs[1:]
		return f
	}
	return r.frac
}

func (r *stubRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.intn % n
}

// RangeInt 总是返回最小值
func (r *stubRandom) RangeInt(min, max int) int {
	return min
}

func (r *stubRandom) RangeFloat(min, max float64) float64 {
	return min + r.next()*(max-min)
}

type fakePlayer struct {
	pos     types.Vec2
	damages []float64
}

func (p *fakePlayer) Position() types.Vec2 { return p.pos }

func (p *fakePlayer) ApplyDamage(amount float64) {
	p.damages = append(p.damages, amount)
}

type fakeClock struct {
	now float64
}

func (c *fakeClock) GameplayTime() float64 { return c.now }

func testEnemyStats() *config.EnemyStatsConfig {
	return &config.EnemyStatsConfig{
		Enemies: map[string]*config.EnemyTypeDefinition{
			"bat":   {ID: "bat", Health: 10, Damage: 5, DamageCooldown: 1, MoveSpeed: 2},
			"ghoul": {ID: "ghoul", Health: 30, Damage: 10, DamageCooldown: 1.5, MoveSpeed: 1},
		},
	}
}

// 1/64 秒可以精确表示，一分钟正好 3840 帧
const testTick = 0.015625

const ticksPerMinute = 3840
