// stagecheck 校验敌人定义和关卡配置
//
//	go run ./cmd/stagecheck                      # 校验 data/ 下的全部配置
//	go run ./cmd/stagecheck data/stages/crypt.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/embedded"
)

var enemiesPath = flag.String("enemies", "data/enemies.yaml", "敌人定义文件")

func main() {
	flag.Parse()

	stats, err := config.LoadEnemyStats(*enemiesPath)
	if err != nil {
		fmt.Printf("❌ 敌人定义加载失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 敌人类型数量: %d %v\n", len(stats.Enemies), stats.IDs())

	files := flag.Args()
	if len(files) == 0 {
		files, err = filepath.Glob("data/stages/*.yaml")
		if err != nil || len(files) == 0 {
			fmt.Printf("❌ 没有找到关卡文件\n")
			os.Exit(1)
		}
	}

	failed := 0
	for _, file := range files {
		if !checkStage(file, stats) {
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个关卡未通过校验\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 全部 %d 个关卡通过校验\n", len(files))
}

// checkStage 校验单个关卡并输出每分钟的刷怪范围
func checkStage(file string, stats *config.EnemyStatsConfig) bool {
	stage, err := config.LoadStageConfig(file)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return false
	}

	if unknown := config.ValidateStageEnemies(stage, stats); len(unknown) > 0 {
		fmt.Printf("❌ %s: 未定义的敌人 %v\n", file, unknown)
		return false
	}

	fmt.Printf("✅ %s: %s (%d 分钟, 刷怪半径 %.1f)\n", file, stage.ID, stage.DurationMinutes(), stage.SpawnRadius)
	for m, wave := range stage.Minutes {
		minSpawns, maxSpawns := spawnRange(&wave)
		fmt.Printf("   第 %d 分钟: %d~%d 个敌人\n", m+1, minSpawns, maxSpawns)
	}
	return true
}

// spawnRange 单分钟内刷怪数量的上下限（常规 + 事件）
func spawnRange(wave *config.MinuteWaveConfig) (int, int) {
	lo, hi := 0, 0
	for _, r := range wave.RegularSpawns {
		lo += r.MinSpawns
		hi += r.MaxSpawns
	}
	for _, e := range wave.EventSpawns {
		lo += e.MinEvents * e.BurstSize
		hi += e.MaxEvents * e.BurstSize
	}
	return lo, hi
}

func init() {
	// 关卡文件直接从磁盘读取，不使用嵌入资源
	embedded.Init(os.DirFS("."))
}
