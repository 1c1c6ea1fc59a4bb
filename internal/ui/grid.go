// internal/ui/grid.go
package ui

import (
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/pkg/render"
)

const (
	gridCellWidth  = 132
	gridCellHeight = 34
	gridGap        = 8
	gridSwatch     = 7
	gridPadding    = 10
)

// GridPresentation - статичная сетка того же каталога. Без анимации,
// годится как запасной вариант, когда 3D недоступно.
type GridPresentation struct {
	bounds render.Rect
	colors render.PageColors
}

func NewGridPresentation() *GridPresentation {
	return &GridPresentation{colors: config.Colors()}
}

func (g *GridPresentation) Name() string { return "grid" }

func (g *GridPresentation) Layout(bounds render.Rect) { g.bounds = bounds }

func (g *GridPresentation) columns() int {
	cols := int((g.bounds.Width + gridGap) / (gridCellWidth + gridGap))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// cell возвращает прямоугольник i-й ячейки. Сетка центрируется по ширине.
func (g *GridPresentation) cell(i, n int) render.Rect {
	cols := g.columns()
	if n < cols {
		cols = n
	}
	rows := (n + cols - 1) / cols
	totalW := float32(cols*gridCellWidth + (cols-1)*gridGap)
	totalH := float32(rows*gridCellHeight + (rows-1)*gridGap)
	x0 := g.bounds.X + (g.bounds.Width-totalW)/2
	y0 := g.bounds.Y + (g.bounds.Height-totalH)/2
	if y0 < g.bounds.Y {
		y0 = g.bounds.Y
	}
	col, row := i%cols, i/cols
	return render.Rect{
		X:      x0 + float32(col*(gridCellWidth+gridGap)),
		Y:      y0 + float32(row*(gridCellHeight+gridGap)),
		Width:  gridCellWidth,
		Height: gridCellHeight,
	}
}

func (g *GridPresentation) HitTest(x, y float64, orbit *system.OrbitSystem) (int, bool) {
	n := orbit.Len()
	for i := 0; i < n; i++ {
		if g.cell(i, n).Contains(float32(x), float32(y)) {
			return i, true
		}
	}
	return system.NoSelection, false
}

func (g *GridPresentation) Draw(canvas render.Canvas, orbit *system.OrbitSystem) {
	if canvas == nil || orbit == nil {
		return
	}
	n := orbit.Len()
	selected, _ := orbit.Selected()
	hovered, _ := orbit.Hovered()
	for i, skill := range orbit.Skills() {
		r := g.cell(i, n)
		bg := g.colors.PanelColor
		if i == hovered {
			bg = render.WithAlpha(skill.Color, 0.35)
		}
		canvas.FillRect(r.X, r.Y, r.Width, r.Height, bg)
		if i == selected {
			canvas.StrokeRect(r.X, r.Y, r.Width, r.Height, config.StrokeWidth, skill.Color)
		}
		cy := r.Y + r.Height/2
		canvas.FillCircle(r.X+gridPadding+gridSwatch, cy, gridSwatch, skill.Color)
		canvas.Text(skill.Name, int(r.X)+gridPadding+gridSwatch*2+gridPadding, int(cy)-6, g.colors.TextLightColor)
	}
}
