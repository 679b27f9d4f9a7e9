package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/horde/pkg/app"
	"github.com/gonewx/horde/pkg/embedded"
	"github.com/gonewx/horde/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试日志")
	stage   = flag.String("stage", "", "直接开始指定关卡（如 forest），为空进入关卡选择")
	seed    = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Stage:   *stage,
		Seed:    *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
	ebiten.SetWindowTitle("Horde")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	if err := gameApp.SaveRecords(); err != nil {
		log.Printf("[main] Warning: failed to save records: %v", err)
	}
}
