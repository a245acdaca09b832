package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"wireframe/internal/geom"
	"wireframe/internal/render"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "wireframe"
)

// Run starts the window and main loop. Each frame it calls update (input), then clears the screen and calls draw.
// ESC toggles the terminal, so the window is closed via its button only.
func Run(update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// LineTarget draws projected lines in screen space with raylib. The projection origin is the
// screen centre, one world unit is PixelsPerUnit pixels and +Y points up.
// It implements render.Target and must be used between BeginDrawing and EndDrawing.
type LineTarget struct {
	PixelsPerUnit float32

	color  rl.Color
	origin geom.Point2
	open   bool
}

// NewLineTarget returns a LineTarget with the given scale.
func NewLineTarget(pixelsPerUnit float32) *LineTarget {
	return &LineTarget{PixelsPerUnit: pixelsPerUnit}
}

// Begin binds mat's colour and fixes the origin to the current screen centre.
func (t *LineTarget) Begin(mat *render.Material) {
	c := mat.Color
	t.color = rl.NewColor(c.R, c.G, c.B, c.A)
	t.origin = geom.P2(float32(rl.GetScreenWidth())*0.5, float32(rl.GetScreenHeight())*0.5)
	t.open = true
}

// Line draws a-b. Calls outside Begin/End are dropped.
func (t *LineTarget) Line(a, b geom.Point2) {
	if !t.open {
		return
	}
	rl.DrawLineV(t.toScreen(a), t.toScreen(b), t.color)
}

// End closes the line context.
func (t *LineTarget) End() {
	t.open = false
}

func (t *LineTarget) toScreen(p geom.Point2) rl.Vector2 {
	s := t.origin.Add(geom.P2(p.X, -p.Y).Scale(t.PixelsPerUnit))
	return rl.NewVector2(s.X, s.Y)
}
