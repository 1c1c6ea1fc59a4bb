// internal/ui/skill_orbit.go
package ui

import (
	"go-portfolio-fx/internal/audio"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/pkg/render"
)

// SkillOrbit - виджет орбит навыков: движок плюс выбранная раскладка.
// Наведение и клики обрабатываются только внутри своей области.
type SkillOrbit struct {
	lifecycle
	orbit        *system.OrbitSystem
	presentation Presentation
	sounds       audio.Sounds
	bounds       render.Rect
}

// NewSkillOrbit собирает виджет. sounds может быть nil, тогда виджет беззвучен.
func NewSkillOrbit(orbit *system.OrbitSystem, presentation Presentation, sounds audio.Sounds) *SkillOrbit {
	if sounds == nil {
		sounds = &audio.Nop{}
	}
	return &SkillOrbit{
		lifecycle:    newLifecycle("skill-orbit"),
		orbit:        orbit,
		presentation: presentation,
		sounds:       sounds,
	}
}

func (w *SkillOrbit) Mount(d *event.Dispatcher, s *scheduler.Scheduler) {
	w.mount(d, s, w, w.orbit.Update, event.PointerMoved, event.Clicked)
}

func (w *SkillOrbit) Unmount() {
	w.unmount()
}

// SetBounds задаёт область виджета на экране.
func (w *SkillOrbit) SetBounds(r render.Rect) {
	w.bounds = r
	w.presentation.Layout(r)
}

// Bounds возвращает область виджета.
func (w *SkillOrbit) Bounds() render.Rect { return w.bounds }

// OnEvent реализует event.Listener.
func (w *SkillOrbit) OnEvent(e event.Event) {
	x, y, ok := pointData(e)
	if !ok {
		return
	}
	switch e.Type {
	case event.PointerMoved:
		w.hover(x, y)
	case event.Clicked:
		w.click(x, y)
	}
}

func (w *SkillOrbit) inside(x, y float64) bool {
	return w.bounds.Contains(float32(x), float32(y))
}

func (w *SkillOrbit) hover(x, y float64) {
	if !w.inside(x, y) {
		w.orbit.ClearHover()
		return
	}
	idx, hit := w.presentation.HitTest(x, y, w.orbit)
	if !hit {
		w.orbit.ClearHover()
		return
	}
	if prev, had := w.orbit.Hovered(); had && prev == idx {
		return
	}
	w.orbit.SetHovered(idx)
	w.sounds.PlayHover()
}

func (w *SkillOrbit) click(x, y float64) {
	if !w.inside(x, y) {
		return
	}
	idx, hit := w.presentation.HitTest(x, y, w.orbit)
	if !hit {
		return
	}
	w.sounds.PlayClick()
	w.dispatch(event.Event{Type: event.SkillSelected, Data: w.toggle(idx)})
}

func (w *SkillOrbit) toggle(idx int) event.Selection {
	sel, ok := w.orbit.Toggle(idx)
	if !ok {
		return event.Selection{Index: system.NoSelection}
	}
	return event.Selection{Index: sel, Name: w.orbit.Skills()[sel].Name}
}

// ClearSelection снимает выбор и сообщает об этом подписчикам.
func (w *SkillOrbit) ClearSelection() {
	if _, ok := w.orbit.Selected(); !ok {
		return
	}
	w.orbit.Clear()
	w.dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: system.NoSelection}})
}

func (w *SkillOrbit) Draw(canvas render.Canvas) {
	if canvas == nil {
		return
	}
	w.presentation.Draw(canvas, w.orbit)
}

// Orbit даёт доступ к движку.
func (w *SkillOrbit) Orbit() *system.OrbitSystem { return w.orbit }

// Presentation возвращает текущую раскладку.
func (w *SkillOrbit) Presentation() Presentation { return w.presentation }
