package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, lines drawn last frame). All overlays are off by default.
type Debug struct {
	ShowFPS       bool
	ShowLineCount bool
	frameCount    uint32
	lastFpsText   string
	lastLines     int
	lastLinesText string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders enabled overlays at the top-right in green. lines is the count drawn this frame.
func (d *Debug) Draw(lines int) {
	d.frameCount++
	if d.frameCount%updateInterval == 0 || d.lastFpsText == "" {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if lines != d.lastLines || d.lastLinesText == "" {
		d.lastLines = lines
		d.lastLinesText = fmt.Sprintf("Lines: %d", lines)
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.ShowFPS {
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowLineCount {
		drawRight(d.lastLinesText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
