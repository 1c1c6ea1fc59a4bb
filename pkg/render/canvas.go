package render

import "image/color"

// Canvas - поверхность отрисовки, общая для 2D-бэкендов (ebiten и raylib).
// Виджеты рисуют только через неё и не знают, какой движок под ними.
type Canvas interface {
	// Size возвращает размер поверхности в пикселях.
	Size() (width, height int)
	FillCircle(x, y, radius float32, clr color.Color)
	StrokeCircle(x, y, radius, width float32, clr color.Color)
	FillRect(x, y, width, height float32, clr color.Color)
	StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color)
	Line(x1, y1, x2, y2, width float32, clr color.Color)
	// Glow рисует мягкий ореол вокруг точки с аддитивным смешиванием.
	Glow(x, y, radius float32, clr color.RGBA)
	// Text выводит строку так, что (x, y) - левый верхний угол.
	Text(s string, x, y int, clr color.Color)
	// TextWidth возвращает ширину строки в пикселях.
	TextWidth(s string) int
}

// Rect - прямоугольная область экрана.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float32, float32) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
