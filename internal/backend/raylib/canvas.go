// internal/backend/raylib/canvas.go
package raylib

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-portfolio-fx/pkg/render"
)

const (
	fontSize    = 16
	fontSpacing = 1
)

var _ render.Canvas = (*Canvas)(nil)

// Canvas рисует 2D-примитивы raylib. Вызывать только между BeginDrawing и EndDrawing.
type Canvas struct {
	font rl.Font
}

func NewCanvas() *Canvas {
	return &Canvas{font: rl.GetFontDefault()}
}

func (c *Canvas) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (c *Canvas) FillCircle(x, y, radius float32, clr color.Color) {
	rl.DrawCircleV(rl.NewVector2(x, y), radius, colorToRL(clr))
}

func (c *Canvas) StrokeCircle(x, y, radius, width float32, clr color.Color) {
	rl.DrawRing(rl.NewVector2(x, y), radius-width/2, radius+width/2, 0, 360, 48, colorToRL(clr))
}

func (c *Canvas) FillRect(x, y, width, height float32, clr color.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(x, y, width, height), colorToRL(clr))
}

func (c *Canvas) StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, width, height), strokeWidth, colorToRL(clr))
}

func (c *Canvas) Line(x1, y1, x2, y2, width float32, clr color.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), width, colorToRL(clr))
}

// Glow - радиальный градиент с аддитивным смешиванием.
func (c *Canvas) Glow(x, y, radius float32, clr color.RGBA) {
	inner := colorToRL(clr)
	outer := inner
	outer.A = 0
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawCircleGradient(int32(x), int32(y), radius, inner, outer)
	rl.EndBlendMode()
}

func (c *Canvas) Text(s string, x, y int, clr color.Color) {
	rl.DrawTextEx(c.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, fontSpacing, colorToRL(clr))
}

func (c *Canvas) TextWidth(s string) int {
	return int(rl.MeasureTextEx(c.font, s, fontSize, fontSpacing).X)
}

// colorToRL переводит цвет в rl.Color. color.RGBA из пакета render хранит
// альфу без премультипликации, поэтому каналы берутся как есть.
func colorToRL(c color.Color) rl.Color {
	switch v := c.(type) {
	case color.RGBA:
		return rl.NewColor(v.R, v.G, v.B, v.A)
	case color.NRGBA:
		return rl.NewColor(v.R, v.G, v.B, v.A)
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return rl.Blank
	}
	// Остальные цвета приходят премультиплицированными.
	return rl.NewColor(uint8(r*0xffff/a>>8), uint8(g*0xffff/a>>8), uint8(b*0xffff/a>>8), uint8(a>>8))
}
