// internal/ui/ring.go
package ui

import (
	"image/color"
	"math"
	"sort"

	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/pkg/render"
)

const (
	ringTilt        = 0.35 // сжатие колец по вертикали, имитация наклона камеры
	ringLayerScale  = 14.0 // px на единицу слоя
	ringSegments    = 64
	ringMargin      = 24.0
	coreRadius      = 14.0
	satelliteCount  = 8
	satelliteSpeed  = 2.0
	labelGap        = 4
	labelIdleAlpha  = 0.7
	highlightAlpha  = 0.35
	hoverRingAlpha  = 0.8
	orbGlowFactor   = 2.2
	depthScaleFront = 0.15
)

// RingPresentation рисует орбиты плоско: кольца-эллипсы вокруг ядра,
// дальние орбы раньше ближних.
type RingPresentation struct {
	bounds      render.Rect
	screenScale float64
	orbRadius   float64
	colors      render.PageColors
}

// projectedOrb - навык на экране в текущем кадре.
type projectedOrb struct {
	index int
	x, y  float64
	r     float64
	depth float64
	v     component.OrbVisual
}

// NewRingPresentation создаёт плоскую раскладку. screenScale - пикселей на
// мировую единицу для колец без экранного радиуса, orbRadius - радиус орба в
// мировых единицах.
func NewRingPresentation(screenScale, orbRadius float64) *RingPresentation {
	return &RingPresentation{
		screenScale: screenScale,
		orbRadius:   orbRadius,
		colors:      config.Colors(),
	}
}

func (p *RingPresentation) Name() string { return "ring" }

func (p *RingPresentation) Layout(bounds render.Rect) { p.bounds = bounds }

func (p *RingPresentation) ringRadius(cat component.Category) float64 {
	if cat.ScreenRadius > 0 {
		return cat.ScreenRadius
	}
	return cat.Radius * p.screenScale
}

// fit возвращает множитель, с которым внешнее кольцо помещается в область.
func (p *RingPresentation) fit(orbit *system.OrbitSystem) float64 {
	maxR := 0.0
	for _, c := range orbit.Categories() {
		maxR = math.Max(maxR, p.ringRadius(c))
	}
	avail := math.Min(float64(p.bounds.Width), float64(p.bounds.Height))/2 - ringMargin
	if maxR <= 0 || avail <= 0 || avail >= maxR {
		return 1
	}
	return avail / maxR
}

func (p *RingPresentation) center() (float64, float64) {
	cx, cy := p.bounds.Center()
	return float64(cx), float64(cy)
}

// project переводит все навыки в экранные координаты, от дальних к ближним.
func (p *RingPresentation) project(orbit *system.OrbitSystem) []projectedOrb {
	cx, cy := p.center()
	f := p.fit(orbit)
	cats := orbit.Categories()

	orbs := make([]projectedOrb, orbit.Len())
	for i := range orbs {
		v := orbit.Transform(i)
		radius := p.ringRadius(cats[orbit.Slot(i).Category]) * f
		depth := math.Sin(v.Angle)
		orbs[i] = projectedOrb{
			index: i,
			x:     cx + radius*math.Cos(v.Angle),
			y:     cy + radius*depth*ringTilt - v.Y*ringLayerScale*f,
			r:     p.orbRadius * p.screenScale * v.Scale * f * (1 - depthScaleFront + depthScaleFront*depth),
			depth: depth,
			v:     v,
		}
	}
	sort.SliceStable(orbs, func(a, b int) bool { return orbs[a].depth < orbs[b].depth })
	return orbs
}

// HitTest ищет ближайший к зрителю орб под точкой.
func (p *RingPresentation) HitTest(x, y float64, orbit *system.OrbitSystem) (int, bool) {
	orbs := p.project(orbit)
	for i := len(orbs) - 1; i >= 0; i-- {
		o := orbs[i]
		if math.Hypot(x-o.x, y-o.y) <= o.r {
			return o.index, true
		}
	}
	return system.NoSelection, false
}

func (p *RingPresentation) Draw(canvas render.Canvas, orbit *system.OrbitSystem) {
	if canvas == nil || orbit == nil {
		return
	}
	cx, cy := p.center()
	f := p.fit(orbit)

	for _, c := range orbit.Categories() {
		p.drawRing(canvas, cx, cy-c.Layer*ringLayerScale*f, p.ringRadius(c)*f)
	}

	canvas.Glow(float32(cx), float32(cy), float32(coreRadius*3*f), render.WithAlpha(p.colors.CoreColor, 0.4))
	canvas.FillCircle(float32(cx), float32(cy), float32(coreRadius*f), p.colors.CoreColor)

	skills := orbit.Skills()
	for _, o := range p.project(orbit) {
		p.drawOrb(canvas, o, skills[o.index], orbit.Elapsed())
	}
}

func (p *RingPresentation) drawRing(canvas render.Canvas, cx, cy, r float64) {
	prevX, prevY := cx+r, cy
	for s := 1; s <= ringSegments; s++ {
		a := float64(s) / ringSegments * 2 * math.Pi
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)*ringTilt
		canvas.Line(float32(prevX), float32(prevY), float32(x), float32(y), 1, p.colors.RingGuideColor)
		prevX, prevY = x, y
	}
}

func (p *RingPresentation) drawOrb(canvas render.Canvas, o projectedOrb, skill component.Skill, elapsed float64) {
	x, y, r := float32(o.x), float32(o.y), float32(o.r)

	canvas.Glow(x, y, r*orbGlowFactor, render.WithAlpha(skill.Color, o.v.Glow))
	canvas.FillCircle(x, y, r, skill.Color)
	canvas.FillCircle(x-r*0.3, y-r*0.3, r*0.35, render.WithAlpha(color.RGBA{255, 255, 255, 255}, highlightAlpha))

	if o.v.Hovered {
		canvas.StrokeCircle(x, y, r+4, 2, render.WithAlpha(skill.Color, hoverRingAlpha))
	}
	if o.v.Selected {
		canvas.StrokeCircle(x, y, r+7, 2, p.colors.TextLightColor)
		for k := 0; k < satelliteCount; k++ {
			a := elapsed*satelliteSpeed + float64(k)*2*math.Pi/satelliteCount
			sx := x + float32(math.Cos(a))*r*1.8
			sy := y + float32(math.Sin(a))*r*1.8
			canvas.FillCircle(sx, sy, 2.5, skill.Color)
		}
	}

	label := p.colors.TextLightColor
	if !o.v.Hovered && !o.v.Selected {
		label = render.WithAlpha(label, labelIdleAlpha)
	}
	w := canvas.TextWidth(skill.Name)
	canvas.Text(skill.Name, int(x)-w/2, int(y+r)+labelGap, label)
}
