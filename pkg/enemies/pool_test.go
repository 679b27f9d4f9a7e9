package enemies

import (
	"math/rand"
	"testing"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/types"
)

var testBat = &config.EnemyTypeDefinition{ID: "bat", Health: 5, MoveSpeed: 2}

// checkPartition 验证空闲栈与活动列表的划分
func checkPartition(t *testing.T, p *EnemyPool) {
	t.Helper()

	if len(p.free)+len(p.active) != p.Capacity() {
		t.Fatalf("free(%d) + active(%d) != capacity(%d)", len(p.free), len(p.active), p.Capacity())
	}

	seen := make(map[Handle]string)
	for _, h := range p.free {
		if where, dup := seen[h]; dup {
			t.Fatalf("handle %d appears in free and %s", h, where)
		}
		seen[h] = "free"
		if p.slots[h].Active {
			t.Fatalf("free handle %d is marked active", h)
		}
	}
	for _, h := range p.active {
		if where, dup := seen[h]; dup {
			t.Fatalf("handle %d appears in active and %s", h, where)
		}
		seen[h] = "active"
		if !p.slots[h].Active {
			t.Fatalf("active handle %d is marked inactive", h)
		}
	}
	if len(seen) != p.Capacity() {
		t.Fatalf("%d distinct handles tracked, want %d", len(seen), p.Capacity())
	}
}

func TestNewEnemyPool(t *testing.T) {
	p := NewEnemyPool(8)

	if p.Capacity() != 8 {
		t.Errorf("Capacity: got %d, want 8", p.Capacity())
	}
	if p.FreeCount() != 8 || p.ActiveCount() != 0 {
		t.Errorf("fresh pool: free=%d active=%d, want 8/0", p.FreeCount(), p.ActiveCount())
	}
	checkPartition(t, p)

	if NewEnemyPool(0).Capacity() != 1 {
		t.Error("capacity below 1 should be clamped to 1")
	}
}

func TestAcquireInitializesSlot(t *testing.T) {
	p := NewEnemyPool(4)
	pos := types.Vec2{X: 3, Y: -2}

	h, ok := p.Acquire(testBat, pos)
	if !ok {
		t.Fatal("Acquire should succeed on an empty pool")
	}

	e := p.Get(h)
	if e.Definition != testBat {
		t.Error("definition not set")
	}
	if e.Health != testBat.Health {
		t.Errorf("Health: got %v, want %v", e.Health, testBat.Health)
	}
	if !e.Active {
		t.Error("enemy should be active")
	}
	if e.Position != pos {
		t.Errorf("Position: got %v, want %v", e.Position, pos)
	}
	if !p.Contains(h) {
		t.Error("handle should be in the active list")
	}
	checkPartition(t, p)
}

func TestAcquireResetsReusedSlot(t *testing.T) {
	p := NewEnemyPool(1)

	h, _ := p.Acquire(testBat, types.Vec2{})
	e := p.Get(h)
	e.Health = 1
	e.Dying = true
	e.DespawnCountdown = 0.3
	e.HitCooldown = 2
	p.Release(h)

	h2, ok := p.Acquire(testBat, types.Vec2{X: 1})
	if !ok || h2 != h {
		t.Fatalf("expected slot %d to be reused, got %d (ok=%v)", h, h2, ok)
	}
	e = p.Get(h2)
	if e.Health != testBat.Health || e.Dying || e.DespawnCountdown != 0 || e.HitCooldown != 0 {
		t.Errorf("reused slot not reset: %+v", *e)
	}
}

func TestAcquireFullPool(t *testing.T) {
	p := NewEnemyPool(3)
	for i := 0; i < 3; i++ {
		if _, ok := p.Acquire(testBat, types.Vec2{}); !ok {
			t.Fatalf("Acquire %d failed", i)
		}
	}

	before := p.ActiveHandles()
	cursor := p.Cursor()

	h, ok := p.Acquire(testBat, types.Vec2{})
	if ok || h != InvalidHandle {
		t.Fatalf("Acquire on full pool: got (%d, %v), want (InvalidHandle, false)", h, ok)
	}

	// 状态不变
	after := p.ActiveHandles()
	if len(after) != len(before) {
		t.Fatalf("active list changed: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("active list changed: %v -> %v", before, after)
		}
	}
	if p.Cursor() != cursor {
		t.Errorf("cursor changed: %d -> %d", cursor, p.Cursor())
	}
	checkPartition(t, p)
}

func TestAcquireNilDefinition(t *testing.T) {
	p := NewEnemyPool(2)
	if _, ok := p.Acquire(nil, types.Vec2{}); ok {
		t.Error("Acquire with nil definition should fail")
	}
	if p.FreeCount() != 2 {
		t.Error("failed Acquire must not consume a slot")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	p := NewEnemyPool(2)
	h, _ := p.Acquire(testBat, types.Vec2{})

	p.Release(h)
	p.Release(h)
	p.Release(Handle(99))
	p.Release(InvalidHandle)

	if p.FreeCount() != 2 || p.ActiveCount() != 0 {
		t.Errorf("after double release: free=%d active=%d, want 2/0", p.FreeCount(), p.ActiveCount())
	}
	checkPartition(t, p)
}

func TestReleasePreservesOrder(t *testing.T) {
	p := NewEnemyPool(5)
	var hs []Handle
	for i := 0; i < 5; i++ {
		h, _ := p.Acquire(testBat, types.Vec2{})
		hs = append(hs, h)
	}

	p.Release(hs[2])

	got := p.ActiveHandles()
	want := []Handle{hs[0], hs[1], hs[3], hs[4]}
	if len(got) != len(want) {
		t.Fatalf("active: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("active: got %v, want %v", got, want)
		}
	}
}

// TestPoolRoundTrip 容量 10：生成 10 个、全部回收、再生成 10 个
func TestPoolRoundTrip(t *testing.T) {
	p := NewEnemyPool(10)

	var hs []Handle
	for i := 0; i < 10; i++ {
		h, ok := p.Acquire(testBat, types.Vec2{})
		if !ok {
			t.Fatalf("first batch Acquire %d failed", i)
		}
		hs = append(hs, h)
	}
	for _, h := range hs {
		p.Release(h)
	}
	checkPartition(t, p)

	for i := 0; i < 10; i++ {
		if _, ok := p.Acquire(testBat, types.Vec2{}); !ok {
			t.Fatalf("second batch Acquire %d failed", i)
		}
	}
	if p.FreeCount() != 0 || p.ActiveCount() != 10 {
		t.Errorf("after second batch: free=%d active=%d, want 0/10", p.FreeCount(), p.ActiveCount())
	}
	checkPartition(t, p)
}

// TestPoolPartitionRandomOps 随机的生成/回收序列下，每一步空闲栈与活动列表都保持划分
func TestPoolPartitionRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	p := NewEnemyPool(16)

	for step := 0; step < 2000; step++ {
		switch rng.Intn(3) {
		case 0, 1:
			p.Acquire(testBat, types.Vec2{})
		case 2:
			// 随机回收，包括已回收的句柄
			p.Release(Handle(rng.Intn(p.Capacity())))
		}
		if rng.Intn(4) == 0 {
			p.VisitRoundRobin(1+rng.Intn(6), func(Handle, *components.EnemyComponent) {})
		}
		checkPartition(t, p)
		if p.Cursor() < 0 {
			t.Fatalf("step %d: negative cursor", step)
		}
	}
}

// collectVisits 运行一次轮询并返回访问顺序
func collectVisits(p *EnemyPool, limit int) []Handle {
	var visited []Handle
	p.VisitRoundRobin(limit, func(h Handle, _ *components.EnemyComponent) {
		visited = append(visited, h)
	})
	return visited
}

func fillPool(p *EnemyPool, n int) []Handle {
	var hs []Handle
	for i := 0; i < n; i++ {
		h, _ := p.Acquire(testBat, types.Vec2{})
		hs = append(hs, h)
	}
	return hs
}

func equalHandles(a, b []Handle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVisitRoundRobinSlices(t *testing.T) {
	p := NewEnemyPool(10)
	hs := fillPool(p, 10)

	if got := collectVisits(p, 4); !equalHandles(got, hs[0:4]) {
		t.Errorf("first slice: got %v, want %v", got, hs[0:4])
	}
	if got := collectVisits(p, 4); !equalHandles(got, hs[4:8]) {
		t.Errorf("second slice: got %v, want %v", got, hs[4:8])
	}
	// 到达末尾提前结束，不在同一次调用中回绕
	if got := collectVisits(p, 4); !equalHandles(got, hs[8:10]) {
		t.Errorf("tail slice: got %v, want %v", got, hs[8:10])
	}
	// 下一次从头开始
	if got := collectVisits(p, 4); !equalHandles(got, hs[0:4]) {
		t.Errorf("wrapped slice: got %v, want %v", got, hs[0:4])
	}
}

func TestVisitRoundRobinAtMostOncePerCall(t *testing.T) {
	p := NewEnemyPool(5)
	hs := fillPool(p, 3)

	got := collectVisits(p, 50)
	if !equalHandles(got, hs) {
		t.Errorf("limit larger than population: got %v, want %v", got, hs)
	}

	if n := p.VisitRoundRobin(5, func(Handle, *components.EnemyComponent) {}); n != 3 {
		t.Errorf("visited %d, want 3", n)
	}
}

func TestVisitRoundRobinEmpty(t *testing.T) {
	p := NewEnemyPool(5)
	if n := p.VisitRoundRobin(5, func(Handle, *components.EnemyComponent) {
		t.Fatal("callback must not run on an empty pool")
	}); n != 0 {
		t.Errorf("visited %d on empty pool", n)
	}
}

// TestReleaseBeforeCursorDoesNotSkip 回收游标之前的元素后，下一次轮询不跳过也不重复
func TestReleaseBeforeCursorDoesNotSkip(t *testing.T) {
	p := NewEnemyPool(10)
	hs := fillPool(p, 10)

	collectVisits(p, 4) // 访问 0..3，游标 = 4
	p.Release(hs[1])     // 位置 1 < 游标

	if p.Cursor() != 3 {
		t.Fatalf("cursor after release: got %d, want 3", p.Cursor())
	}

	want := []Handle{hs[4], hs[5], hs[6], hs[7]}
	if got := collectVisits(p, 4); !equalHandles(got, want) {
		t.Errorf("after release: got %v, want %v", got, want)
	}
}

// TestReleaseAfterCursor 游标之后的回收不修正游标
func TestReleaseAfterCursor(t *testing.T) {
	p := NewEnemyPool(10)
	hs := fillPool(p, 10)

	collectVisits(p, 4)
	p.Release(hs[7])

	if p.Cursor() != 4 {
		t.Fatalf("cursor after releasing past it: got %d, want 4", p.Cursor())
	}
	want := []Handle{hs[4], hs[5], hs[6], hs[8]}
	if got := collectVisits(p, 4); !equalHandles(got, want) {
		t.Errorf("after release: got %v, want %v", got, want)
	}
}

func TestReleaseAtZeroCursorClamps(t *testing.T) {
	p := NewEnemyPool(4)
	hs := fillPool(p, 4)

	p.Release(hs[0])
	if p.Cursor() != 0 {
		t.Fatalf("cursor: got %d, want 0", p.Cursor())
	}
	if got := collectVisits(p, 1); !equalHandles(got, []Handle{hs[1]}) {
		t.Errorf("got %v, want [%d]", got, hs[1])
	}
}
