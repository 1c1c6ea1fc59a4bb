// internal/interfaces/page_context.go
package interfaces

import (
	"go-portfolio-fx/internal/audio"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/defs"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/utils"
	"go-portfolio-fx/internal/ui"
)

// PageContext - всё, что состояниям нужно от приложения. Состояния не
// импортируют app, иначе получится цикл.
type PageContext interface {
	Dispatcher() *event.Dispatcher
	Scheduler() *scheduler.Scheduler
	Sounds() audio.Sounds
	Settings() config.Settings
	Catalog() defs.Catalog
	RNG() *utils.PRNGService
	// Size - текущий размер окна.
	Size() (width, height int)
	// NewPresentation строит основную раскладку орбит. При ошибке страница
	// берёт сетку.
	NewPresentation() (ui.Presentation, error)
}
