package ui

import (
	"image/color"

	"go-portfolio-fx/internal/audio"
)

// drawCall - одна операция рисования на fakeCanvas.
type drawCall struct {
	op    string
	x, y  float32
	r     float32
	color color.Color
	text  string
}

// fakeCanvas записывает вызовы вместо рисования.
type fakeCanvas struct {
	w, h  int
	calls []drawCall
}

func newFakeCanvas() *fakeCanvas { return &fakeCanvas{w: 1200, h: 900} }

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) FillCircle(x, y, r float32, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "fill-circle", x: x, y: y, r: r, color: clr})
}

func (c *fakeCanvas) StrokeCircle(x, y, r, width float32, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "stroke-circle", x: x, y: y, r: r, color: clr})
}

func (c *fakeCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "fill-rect", x: x, y: y, color: clr})
}

func (c *fakeCanvas) StrokeRect(x, y, w, h, sw float32, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "stroke-rect", x: x, y: y, color: clr})
}

func (c *fakeCanvas) Line(x1, y1, x2, y2, width float32, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "line", x: x1, y: y1, color: clr})
}

func (c *fakeCanvas) Glow(x, y, r float32, clr color.RGBA) {
	c.calls = append(c.calls, drawCall{op: "glow", x: x, y: y, r: r, color: clr})
}

func (c *fakeCanvas) Text(s string, x, y int, clr color.Color) {
	c.calls = append(c.calls, drawCall{op: "text", x: float32(x), y: float32(y), color: clr, text: s})
}

func (c *fakeCanvas) TextWidth(s string) int { return len(s) * 7 }

func (c *fakeCanvas) count(op string) int {
	n := 0
	for _, call := range c.calls {
		if call.op == op {
			n++
		}
	}
	return n
}

func (c *fakeCanvas) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.op == "text" {
			out = append(out, call.text)
		}
	}
	return out
}

// fakeSounds считает вызовы звуков.
type fakeSounds struct {
	audio.Nop
	hovers, clicks, successes int
}

func (s *fakeSounds) PlayHover()   { s.hovers++ }
func (s *fakeSounds) PlayClick()   { s.clicks++ }
func (s *fakeSounds) PlaySuccess() { s.successes++ }
