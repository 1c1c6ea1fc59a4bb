// internal/ui/boundary.go
package ui

import (
	"fmt"
	"log"

	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/pkg/render"
)

// Boundary оборачивает основную раскладку. Если она паникует при отрисовке
// или hit-test, паника гасится, пишется одна строка в лог, и дальше
// навсегда используется запасная раскладка.
type Boundary struct {
	primary  Presentation
	fallback Presentation
	bounds   render.Rect
	err      error
}

func NewBoundary(primary, fallback Presentation) *Boundary {
	return &Boundary{primary: primary, fallback: fallback}
}

// Name возвращает имя активной раскладки.
func (b *Boundary) Name() string { return b.active().Name() }

// Failed сообщает, переключилась ли граница на запасной вариант.
func (b *Boundary) Failed() bool { return b.err != nil }

// Err возвращает причину переключения.
func (b *Boundary) Err() error { return b.err }

func (b *Boundary) active() Presentation {
	if b.err != nil {
		return b.fallback
	}
	return b.primary
}

func (b *Boundary) Layout(bounds render.Rect) {
	b.bounds = bounds
	b.fallback.Layout(bounds)
	if b.err == nil {
		b.guard("layout", func() { b.primary.Layout(bounds) })
	}
}

func (b *Boundary) Draw(canvas render.Canvas, orbit *system.OrbitSystem) {
	if b.err == nil {
		b.guard("draw", func() { b.primary.Draw(canvas, orbit) })
	}
	if b.err != nil {
		b.fallback.Draw(canvas, orbit)
	}
}

func (b *Boundary) HitTest(x, y float64, orbit *system.OrbitSystem) (index int, ok bool) {
	if b.err == nil {
		b.guard("hit-test", func() { index, ok = b.primary.HitTest(x, y, orbit) })
		if b.err == nil {
			return index, ok
		}
	}
	return b.fallback.HitTest(x, y, orbit)
}

// guard выполняет fn и при панике переключается на запасную раскладку.
func (b *Boundary) guard(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			b.err = fmt.Errorf("%s %s: %v", b.primary.Name(), op, r)
			log.Printf("ui: presentation failed, switching to %s: %v", b.fallback.Name(), b.err)
		}
	}()
	fn()
}
