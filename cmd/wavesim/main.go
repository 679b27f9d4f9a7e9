// wavesim 无界面的波次模拟器
//
// 以固定步长跑完一个关卡，按分钟输出刷怪统计，用于调试关卡配置：
//
//	go run ./cmd/wavesim -stage forest -seed 42
//	go run ./cmd/wavesim -stage crypt -weapons=false -capacity 150
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/gonewx/horde/pkg/embedded"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/modules"
	"github.com/gonewx/horde/pkg/types"
	"github.com/gonewx/horde/pkg/utils"
)

var (
	dataRoot = flag.String("data", ".", "包含 data/ 目录的根路径")
	stageID  = flag.String("stage", "", "关卡ID，为空时使用第一个关卡")
	seed     = flag.Int64("seed", 1, "随机种子，0 表示使用当前时间")
	dt       = flag.Float64("dt", 1.0/60, "固定步长（秒）")
	weapons  = flag.Bool("weapons", true, "装备替身武器（关闭时敌人只增不减）")
	capacity = flag.Int("capacity", 0, "覆盖对象池容量，0 表示使用配置")
	records  = flag.Bool("records", false, "把本次结果写入纪录存储")
	verbose  = flag.Bool("verbose", false, "显示详细日志")
)

// minuteSummary 单分钟的刷怪统计
type minuteSummary struct {
	regular   int
	event     int
	perEnemy  map[string]int
	peakAlive int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *dt <= 0 {
		fmt.Fprintln(os.Stderr, "dt must be positive")
		os.Exit(2)
	}

	embedded.Init(os.DirFS(*dataRoot))

	content, err := modules.LoadContent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load content: %v\n", err)
		os.Exit(1)
	}

	stage, err := content.Stage(*stageID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *capacity > 0 {
		content.Horde.Pool.Capacity = *capacity
	}

	var recordsManager *game.RecordsManager
	if *records {
		storage, err := game.OpenStorage(game.AppName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "records disabled: %v\n", err)
		}
		recordsManager = game.NewRecordsManager(storage)
	}

	rng := utils.NewRNG(*seed)
	module := modules.NewHordeModule(modules.HordeModuleConfig{
		Horde:   content.Horde,
		Stats:   content.Stats,
		RNG:     rng,
		Records: recordsManager,
		Weapons: *weapons,
	})

	summaries := make(map[int]*minuteSummary)
	summaryFor := func(minute int) *minuteSummary {
		s, ok := summaries[minute]
		if !ok {
			s = &minuteSummary{perEnemy: make(map[string]int)}
			summaries[minute] = s
		}
		return s
	}

	module.Bus().Subscribe(game.EventEnemySpawned, game.ListenerFunc(func(e game.Event) {
		data := e.Data.(game.EnemySpawnedData)
		s := summaryFor(data.Minute)
		if data.Source == types.SpawnSourceEvent {
			s.event++
		} else {
			s.regular++
		}
		s.perEnemy[data.EnemyType]++
	}))

	module.StartStage(stage)

	rs := module.RunState()
	for rs.Phase() == game.PhaseActive {
		module.Update(*dt)

		minute := int(rs.GameplayTime() / 60)
		if alive := module.Pool().ActiveCount(); alive > summaryFor(minute).peakAlive {
			summaryFor(minute).peakAlive = alive
		}
	}

	printReport(os.Stdout, module, summaries, rng.Seed())
}

func printReport(out io.Writer, module *modules.HordeModule, summaries map[int]*minuteSummary, seed int64) {
	stage := module.Stage()
	stats := module.RunStats()

	fmt.Fprintf(out, "stage %s (%s), seed %d, pool capacity %d\n\n",
		stage.ID, stage.Name, seed, module.Pool().Capacity())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "minute\tregular\tevent\tpeak alive\tby enemy")

	minutes := make([]int, 0, len(summaries))
	for m := range summaries {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	for _, m := range minutes {
		s := summaries[m]
		if s.regular+s.event == 0 && s.peakAlive == 0 {
			continue
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n", m+1, s.regular, s.event, s.peakAlive, formatCounts(s.perEnemy))
	}
	w.Flush()

	result := "cleared"
	if module.RunState().IsGameOver() {
		result = "died"
	}
	fmt.Fprintf(out, "\n%s after %.1fs: spawned %d, kills %d, damage %.0f\n",
		result, stats.TimeSurvived, stats.Spawned, stats.Kills, stats.TotalDamage)

	if improved := module.LastImproved(); len(improved) > 0 {
		fmt.Fprintf(out, "new records: %v\n", improved)
	}
}

func formatCounts(counts map[string]int) string {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	s := ""
	for i, id := range ids {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", id, counts[id])
	}
	return s
}
