package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gonewx/horde/pkg/types"
)

// pixelsPerMeter 世界坐标（米）到屏幕像素的缩放
const pixelsPerMeter = 24.0

var defaultEnemyColor = color.RGBA{R: 200, G: 60, B: 60, A: 255}

// parseHexColor 解析 "#rrggbb" 颜色，格式错误时返回 ok=false
func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// worldToScreen 以摄像机中心为屏幕中心，把世界坐标转换为屏幕坐标
func worldToScreen(p, camera types.Vec2) (float32, float32) {
	x := (p.X-camera.X)*pixelsPerMeter + ScreenWidth/2
	y := (p.Y-camera.Y)*pixelsPerMeter + ScreenHeight/2
	return float32(x), float32(y)
}
