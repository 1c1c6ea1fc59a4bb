// internal/ui/info_panel.go
package ui

import (
	"math"

	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/pkg/render"
)

const (
	panelMargin    = 5
	animationSpeed = 600.0 // px/с
	lineHeight     = 20
	swatchRadius   = 8
)

// SkillInfoPanel выезжает снизу области орбит и показывает выбранный навык:
// имя, цвет и кольцо. Когда выбор снят, панель уезжает.
type SkillInfoPanel struct {
	lifecycle
	orbit     *system.OrbitSystem
	colors    render.PageColors
	bounds    render.Rect
	IsVisible bool
	target    int
	currentY  float64
	targetY   float64
}

func NewSkillInfoPanel(orbit *system.OrbitSystem) *SkillInfoPanel {
	return &SkillInfoPanel{
		lifecycle: newLifecycle("info-panel"),
		orbit:     orbit,
		colors:    config.Colors(),
		target:    system.NoSelection,
	}
}

func (p *SkillInfoPanel) Mount(d *event.Dispatcher, s *scheduler.Scheduler) {
	p.mount(d, s, p, p.Update, event.SkillSelected)
}

func (p *SkillInfoPanel) Unmount() {
	p.unmount()
}

// SetBounds задаёт область, у нижнего края которой живёт панель.
func (p *SkillInfoPanel) SetBounds(r render.Rect) {
	p.bounds = r
	p.targetY = p.hiddenY()
	if p.target != system.NoSelection {
		p.targetY = p.shownY()
	}
	p.currentY = p.targetY
}

func (p *SkillInfoPanel) hiddenY() float64 { return float64(p.bounds.Y + p.bounds.Height) }
func (p *SkillInfoPanel) shownY() float64  { return p.hiddenY() - config.InfoPanelHeight }

func (p *SkillInfoPanel) OnEvent(e event.Event) {
	sel, ok := e.Data.(event.Selection)
	if !ok {
		return
	}
	if sel.Index < 0 || sel.Index >= p.orbit.Len() {
		p.Hide()
		return
	}
	p.SetTarget(sel.Index)
}

// SetTarget показывает навык i.
func (p *SkillInfoPanel) SetTarget(i int) {
	p.target = i
	p.IsVisible = true
	p.targetY = p.shownY()
}

// Hide убирает панель; навык сбрасывается, когда она уедет.
func (p *SkillInfoPanel) Hide() {
	p.targetY = p.hiddenY()
}

// Target возвращает показываемый навык.
func (p *SkillInfoPanel) Target() (int, bool) {
	return p.target, p.target != system.NoSelection
}

// Update двигает панель к целевой позиции.
func (p *SkillInfoPanel) Update(deltaTime float64) {
	if p.currentY == p.targetY {
		return
	}
	step := animationSpeed * deltaTime
	diff := p.targetY - p.currentY
	if math.Abs(diff) <= step {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += step
	} else {
		p.currentY -= step
	}
	if p.currentY >= p.hiddenY() {
		p.IsVisible = false
		p.target = system.NoSelection
	}
}

func (p *SkillInfoPanel) Draw(canvas render.Canvas) {
	if canvas == nil || !p.IsVisible || p.target == system.NoSelection {
		return
	}
	skill := p.orbit.Skills()[p.target]
	title := skill.Category
	if cats := p.orbit.Categories(); p.orbit.Slot(p.target).Category < len(cats) {
		title = cats[p.orbit.Slot(p.target).Category].Title
	}

	x := p.bounds.X + panelMargin
	y := float32(p.currentY) + panelMargin
	w := p.bounds.Width - panelMargin*2
	h := float32(config.InfoPanelHeight - panelMargin*2)
	canvas.FillRect(x, y, w, h, p.colors.PanelColor)
	canvas.StrokeRect(x, y, w, h, config.StrokeWidth, render.WithAlpha(skill.Color, 0.6))

	cx := x + 15 + swatchRadius
	cy := y + h/2
	canvas.Glow(cx, cy, swatchRadius*2.5, render.WithAlpha(skill.Color, 0.5))
	canvas.FillCircle(cx, cy, swatchRadius, skill.Color)

	textX := int(cx) + swatchRadius + 12
	canvas.Text(skill.Name, textX, int(cy)-lineHeight+4, p.colors.TextLightColor)
	canvas.Text(title, textX, int(cy)+4, render.WithAlpha(p.colors.TextLightColor, 0.7))
}
