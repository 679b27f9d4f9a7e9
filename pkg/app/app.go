// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/modules"
	"github.com/gonewx/horde/pkg/scenes"
	"github.com/gonewx/horde/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Stage 指定直接开始的关卡ID，为空则进入关卡选择
	Stage string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	records                  *game.RecordsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	content, err := modules.LoadContent()
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	// 存储不可用时以内存模式运行
	storage, err := game.OpenStorage(game.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (records will not be persisted)", err)
		storage = nil
	}
	records := game.NewRecordsManager(storage)

	rng := utils.NewRNG(cfg.Seed)
	log.Printf("[App] Random seed: %d", rng.Seed())

	module := modules.NewHordeModule(modules.HordeModuleConfig{
		Horde:   content.Horde,
		Stats:   content.Stats,
		RNG:     rng,
		Records: records,
		Weapons: true,
	})

	sceneManager := scenes.NewSceneManager()
	stageSelect := scenes.NewStageSelectScene(content, module, sceneManager)
	sceneManager.SwitchTo(stageSelect)

	if cfg.Stage != "" {
		if !stageSelect.Select(cfg.Stage) {
			return nil, fmt.Errorf("unknown stage %q (available: %v)", cfg.Stage, content.StageIDs())
		}
		log.Printf("[App] Starting stage: %s", cfg.Stage)
		stageSelect.StartSelected()
	}

	return &App{
		sceneManager: sceneManager,
		records:      records,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右留黑边，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}

// SaveRecords 保存纪录（窗口关闭时调用）
func (a *App) SaveRecords() error {
	return a.records.Save()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
