package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gonewx/horde/pkg/components"
	"github.com/gonewx/horde/pkg/config"
	"github.com/gonewx/horde/pkg/enemies"
	"github.com/gonewx/horde/pkg/game"
	"github.com/gonewx/horde/pkg/modules"
	"github.com/gonewx/horde/pkg/types"
	"github.com/gonewx/horde/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 34, G: 40, B: 30, A: 255}
	playerColor     = color.RGBA{R: 90, G: 160, B: 230, A: 255}
	dyingColor      = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	ringColor       = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	overlayColor    = color.RGBA{A: 160}
)

// RunScene 一局游戏的场景
//
// 控制：
//   - WASD / 方向键：移动；按住鼠标或触摸时朝指针方向移动
//   - P：暂停 / 继续
//   - L：进入 / 离开升级选择
//   - R：重新开始
//   - Esc：返回关卡选择（结算后）
type RunScene struct {
	module *modules.HordeModule
	stage  *config.StageConfig
	onExit func()
}

// NewRunScene 创建场景并立即开始关卡
func NewRunScene(module *modules.HordeModule, stage *config.StageConfig, onExit func()) *RunScene {
	s := &RunScene{
		module: module,
		stage:  stage,
		onExit: onExit,
	}
	module.StartStage(stage)
	return s
}

// Update 处理输入并推进模块
func (s *RunScene) Update(deltaTime float64) {
	rs := s.module.RunState()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.module.StartStage(s.stage)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		rs.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		if rs.Phase() == game.PhaseLevelUp {
			rs.ResumeFromLevelUp()
		} else {
			rs.EnterLevelUp()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if rs.Phase() == game.PhaseFinish && s.onExit != nil {
			s.onExit()
			return
		}
	}

	// 触屏设备上结算后轻触重新开始
	if tapped, _, _ := isJustTouchedOrClicked(); tapped && rs.Phase() == game.PhaseFinish && utils.IsMobile() {
		s.module.StartStage(s.stage)
		return
	}

	if rs.Phase() == game.PhaseActive {
		s.module.Player().Move(movementInput(), deltaTime)
	}

	s.module.Update(deltaTime)
}

// movementInput 读取方向输入（未归一化）
func movementInput() types.Vec2 {
	var dir types.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if dir == (types.Vec2{}) {
		if pressed, x, y := pointerState(); pressed {
			dir = pointerDirection(x, y)
		}
	}
	return dir
}

// Draw 绘制敌人、玩家和 HUD
// 摄像机跟随玩家
func (s *RunScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	camera := s.module.Player().Position()

	// 刷怪环
	cx, cy := worldToScreen(camera, camera)
	vector.StrokeCircle(screen, cx, cy, float32(s.stage.SpawnRadius*pixelsPerMeter), 1, ringColor, true)

	s.module.Pool().ForEachActive(func(_ enemies.Handle, enemy *components.EnemyComponent) {
		drawEnemy(screen, enemy, camera)
	})

	vector.DrawFilledCircle(screen, cx, cy, float32(0.5*pixelsPerMeter), playerColor, true)

	s.drawHUD(screen)
}

func drawEnemy(screen *ebiten.Image, enemy *components.EnemyComponent, camera types.Vec2) {
	radius := 0.4
	clr := defaultEnemyColor
	if def := enemy.Definition; def != nil {
		if def.Visual.Radius > 0 {
			radius = def.Visual.Radius
		}
		if c, ok := parseHexColor(def.Visual.Color); ok {
			clr = c
		}
	}
	if enemy.Dying {
		clr = dyingColor
	}

	x, y := worldToScreen(enemy.Position, camera)
	vector.DrawFilledCircle(screen, x, y, float32(radius*pixelsPerMeter), clr, true)
}

func (s *RunScene) drawHUD(screen *ebiten.Image) {
	rs := s.module.RunState()
	stats := s.module.RunStats()
	player := s.module.Player()
	pool := s.module.Pool()
	schedule := s.module.Spawner().Schedule()

	elapsed := rs.GameplayTime()
	hud := fmt.Sprintf(
		"%s  %02d:%02d / %02d:%02d  [%s]\nHP %.0f/%.0f  Kills %d  Spawned %d\nPool %d/%d  Minute %d  Events queued %d",
		s.stage.Name, int(elapsed)/60, int(elapsed)%60, int(rs.TimeLimit())/60, int(rs.TimeLimit())%60, rs.Phase(),
		player.Health(), player.MaxHealth(), stats.Kills, stats.Spawned,
		pool.ActiveCount(), pool.Capacity(), schedule.Minute+1, len(schedule.Events),
	)
	ebitenutil.DebugPrint(screen, hud)

	switch rs.Phase() {
	case game.PhasePause:
		s.drawOverlay(screen, "PAUSED\n\nP: resume   R: restart")
	case game.PhaseLevelUp:
		s.drawOverlay(screen, "LEVEL UP\n\nL: continue")
	case game.PhaseFinish:
		s.drawOverlay(screen, s.finishText())
	}
}

func (s *RunScene) finishText() string {
	rs := s.module.RunState()
	stats := s.module.RunStats()

	title := "STAGE CLEARED"
	if rs.IsGameOver() {
		title = "GAME OVER"
	}

	lines := []string{
		title,
		"",
		fmt.Sprintf("Survived %.0fs   Kills %d   Damage %.0f", stats.TimeSurvived, stats.Kills, stats.TotalDamage),
	}
	if improved := s.module.LastImproved(); len(improved) > 0 {
		lines = append(lines, "New records: "+strings.Join(improved, ", "))
	}
	if utils.IsMobile() {
		lines = append(lines, "", "Tap to restart")
	} else {
		lines = append(lines, "", "R: restart   Esc: stage select")
	}
	return strings.Join(lines, "\n")
}

func (s *RunScene) drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, text, ScreenWidth/2-120, ScreenHeight/2-40)
}
