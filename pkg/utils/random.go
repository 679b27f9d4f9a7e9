package utils

import (
	"math/rand"
	"time"
)

// Random 随机数来源
// 所有刷怪与目标选择逻辑都通过此接口取随机数，测试中可替换为固定序列
type Random interface {
	// Intn 返回 [0, n) 内的随机整数
	Intn(n int) int
	// RangeInt 返回 [min, max] 内的随机整数（两端都包含）
	RangeInt(min, max int) int
	// RangeFloat 返回 [min, max) 内的随机浮点数
	RangeFloat(min, max float64) float64
}

// RNG 基于 math/rand 的可设种子随机数生成器
// 相同种子产生相同的刷怪时间线，便于复现问题
type RNG struct {
	rng  *rand.Rand
	seed int64
}

// NewRNG 创建随机数生成器
// seed 为 0 时使用当前时间
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed 返回实际使用的种子
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn 返回 [0, n) 内的随机整数，n <= 0 时返回 0
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// RangeInt 返回 [min, max] 内的随机整数
// max < min 时返回 min
func (r *RNG) RangeInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// RangeFloat 返回 [min, max) 内的随机浮点数
func (r *RNG) RangeFloat(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}
