package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gonewx/horde/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var selectBackground = color.RGBA{R: 20, G: 20, B: 28, A: 255}

// StageSelectScene 关卡选择
// 上下键选择，回车开始，同时显示累计纪录
type StageSelectScene struct {
	content  *modules.Content
	module   *modules.HordeModule
	manager  *SceneManager
	stageIDs []string
	selected int
}

// NewStageSelectScene 创建关卡选择场景
func NewStageSelectScene(content *modules.Content, module *modules.HordeModule, manager *SceneManager) *StageSelectScene {
	return &StageSelectScene{
		content:  content,
		module:   module,
		manager:  manager,
		stageIDs: content.StageIDs(),
	}
}

// Update 处理选择输入
func (s *StageSelectScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		s.selected = (s.selected + len(s.stageIDs) - 1) % len(s.stageIDs)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.selected = (s.selected + 1) % len(s.stageIDs)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.StartSelected()
	default:
		if tapped, _, y := isJustTouchedOrClicked(); tapped {
			s.selectAt(y)
		}
	}
}

// StartSelected 开始当前选中的关卡
func (s *StageSelectScene) StartSelected() {
	stage := s.content.Stages[s.stageIDs[s.selected]]
	s.manager.SwitchTo(NewRunScene(s.module, stage, func() {
		s.manager.SwitchTo(s)
	}))
}

// 列表布局（与 Draw 中 DebugPrintAt 的行高一致）
const (
	listTop        = 40
	listLineHeight = 16
	listFirstLine  = 2
)

// selectAt 点击列表行：点中已选中的行时开始关卡
func (s *StageSelectScene) selectAt(y int) {
	row := (y-listTop)/listLineHeight - listFirstLine
	if y < listTop || row < 0 || row >= len(s.stageIDs) {
		return
	}
	if row == s.selected {
		s.StartSelected()
		return
	}
	s.selected = row
}

// Select 按ID选中关卡，ID 不存在时返回 false
func (s *StageSelectScene) Select(stageID string) bool {
	for i, id := range s.stageIDs {
		if id == stageID {
			s.selected = i
			return true
		}
	}
	return false
}

// Draw 绘制关卡列表与纪录
func (s *StageSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(selectBackground)

	var b strings.Builder
	b.WriteString("SELECT STAGE  (Up/Down, Enter)\n\n")

	records := s.module.Records()
	for i, id := range s.stageIDs {
		stage := s.content.Stages[id]
		marker := "  "
		if i == s.selected {
			marker = "> "
		}
		cleared := ""
		if records != nil && records.IsStageCleared(id) {
			cleared = "  [cleared]"
		}
		fmt.Fprintf(&b, "%s%s (%d min)%s\n", marker, stage.Name, stage.DurationMinutes(), cleared)
	}

	if records != nil {
		r := records.Records()
		fmt.Fprintf(&b, "\nRuns %d   Total kills %d   Best kills %d   Best time %.0fs\n",
			r.TotalRuns, r.TotalKills, r.MaxKills, r.MaxTimeSurvived)
	}

	ebitenutil.DebugPrintAt(screen, b.String(), 40, listTop)
}
