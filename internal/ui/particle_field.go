// internal/ui/particle_field.go
package ui

import (
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/internal/utils"
	"go-portfolio-fx/pkg/render"
)

// ParticleField - слой частиц поверх страницы: след за курсором и взрыв по клику.
type ParticleField struct {
	lifecycle
	cfg    config.ParticleConfig
	system *system.ParticleSystem
}

// NewParticleField создаёт слой частиц. Частицы появятся после Mount.
func NewParticleField(cfg config.ParticleConfig, rng *utils.PRNGService) *ParticleField {
	return &ParticleField{
		lifecycle: newLifecycle("particle-field"),
		cfg:       cfg,
		system:    system.NewParticleSystem(cfg, rng),
	}
}

// Mount подписывает слой на курсор, клики и размер окна и запускает покадровое обновление.
func (f *ParticleField) Mount(d *event.Dispatcher, s *scheduler.Scheduler) {
	f.mount(d, s, f, f.update, event.PointerMoved, event.Clicked, event.Resized)
}

// Unmount отписывает слой и останавливает обновление.
// Unmount отписывает поле и гасит все живые частицы.
func (f *ParticleField) Unmount() {
	f.unmount()
	f.system.Clear()
}

func (f *ParticleField) update(float64) {
	f.system.Update()
}

// OnEvent реализует event.Listener.
func (f *ParticleField) OnEvent(e event.Event) {
	switch e.Type {
	case event.PointerMoved:
		if x, y, ok := pointData(e); ok {
			f.system.PointerMoved(x, y)
		}
	case event.Clicked:
		if x, y, ok := pointData(e); ok {
			f.system.Clicked(x, y)
		}
	case event.Resized:
		if w, h, ok := sizeData(e); ok {
			f.system.Resize(w, h)
		}
	}
}

// Draw рисует ореол и ядро каждой живой частицы.
// Без поверхности (nil) ничего не рисует.
func (f *ParticleField) Draw(canvas render.Canvas) {
	if f == nil || canvas == nil {
		return
	}
	particles := f.system.Particles()
	for i := range particles {
		p := &particles[i]
		alpha := p.Alpha()
		if alpha <= 0 {
			continue
		}
		x, y := float32(p.Pos.X), float32(p.Pos.Y)
		size := float32(p.Size)
		canvas.Glow(x, y, size*float32(f.cfg.GlowFactor), render.WithAlpha(p.Color, alpha*f.cfg.GlowOpacity))
		canvas.FillCircle(x, y, size, render.WithAlpha(p.Color, alpha))
	}
}

// System даёт доступ к движку частиц.
func (f *ParticleField) System() *system.ParticleSystem {
	return f.system
}
