// internal/ui/presentation.go
package ui

import (
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/pkg/render"
)

// Presentation - способ показать орбиты навыков. Движок один, а рисовать
// его можно плоским кольцом, 3D-сценой или статичной сеткой.
type Presentation interface {
	// Name - короткое имя для логов.
	Name() string
	// Layout сообщает область экрана, отведённую под орбиты.
	Layout(bounds render.Rect)
	Draw(canvas render.Canvas, orbit *system.OrbitSystem)
	// HitTest возвращает навык под точкой экрана.
	HitTest(x, y float64, orbit *system.OrbitSystem) (int, bool)
}

// NewPresentation выбирает плоскую раскладку по режиму из настроек.
// Режим "3d" собирается бэкендом raylib, здесь для него берётся кольцо.
func NewPresentation(mode string, screenScale, orbRadius float64) Presentation {
	if mode == "grid" {
		return NewGridPresentation()
	}
	return NewRingPresentation(screenScale, orbRadius)
}
