package scenes

import (
	"github.com/gonewx/horde/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerDeadZone 指针距屏幕中心小于此像素数时不移动
const pointerDeadZone = 12.0

// isJustTouchedOrClicked 检查是否刚刚发生点击或触摸，优先检测触摸
func isJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// pointerState 获取指针状态（触摸或鼠标左键）
func pointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}

// pointerDirection 按住指针时，从屏幕中心（玩家）指向指针的方向
func pointerDirection(x, y int) types.Vec2 {
	dir := types.Vec2{X: float64(x) - ScreenWidth/2, Y: float64(y) - ScreenHeight/2}
	if dir.Len() < pointerDeadZone {
		return types.Vec2{}
	}
	return dir
}
