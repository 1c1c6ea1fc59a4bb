// internal/app/app.go
package app

import (
	"log"

	"go-portfolio-fx/internal/audio"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/defs"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/interfaces"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/state"
	"go-portfolio-fx/internal/ui"
	"go-portfolio-fx/internal/utils"
	"go-portfolio-fx/pkg/render"
)

// PresentationFactory строит основную раскладку орбит. Бэкенд raylib
// подставляет сюда 3D-сцену.
type PresentationFactory func() (ui.Presentation, error)

// Options - зависимости приложения, собранные в main.
type Options struct {
	Settings     config.Settings
	Sounds       audio.Sounds
	Catalog      defs.Catalog
	Presentation PresentationFactory
	// SkipIntro сразу открывает страницу (флаг -dev).
	SkipIntro bool
}

// App holds the page state and the services shared by its widgets.
type App struct {
	settings     config.Settings
	dispatcher   *event.Dispatcher
	scheduler    *scheduler.Scheduler
	stateMachine *state.StateMachine
	sounds       audio.Sounds
	catalog      defs.Catalog
	rng          *utils.PRNGService
	presentation PresentationFactory
	width        int
	height       int
	closed       bool
}

var (
	_ interfaces.Host        = (*App)(nil)
	_ interfaces.PageContext = (*App)(nil)
)

// New initializes the app and enters the first state.
func New(opts Options) *App {
	if opts.Sounds == nil {
		opts.Sounds = &audio.Nop{}
	}
	if len(opts.Catalog.Skills) == 0 {
		opts.Catalog = defs.DefaultCatalog()
	}
	a := &App{
		settings:     opts.Settings,
		dispatcher:   event.NewDispatcher(),
		scheduler:    scheduler.New(opts.Settings.Window.MaxDeltaTime),
		stateMachine: state.NewStateMachine(),
		sounds:       opts.Sounds,
		catalog:      opts.Catalog,
		rng:          utils.NewPRNGService(opts.Settings.Window.Seed),
		presentation: opts.Presentation,
		width:        opts.Settings.Window.Width,
		height:       opts.Settings.Window.Height,
	}
	if a.presentation == nil {
		a.presentation = a.defaultPresentation
	}

	if opts.SkipIntro {
		if err := a.sounds.Init(); err != nil {
			log.Printf("app: sound disabled: %v", err)
		}
		a.stateMachine.SetState(state.NewPageState(a.stateMachine, a))
	} else {
		a.stateMachine.SetState(state.NewIntroState(a.stateMachine, a))
	}
	return a
}

func (a *App) defaultPresentation() (ui.Presentation, error) {
	o := a.settings.Orbit
	return ui.NewPresentation(o.Mode, o.ScreenScale, o.OrbRadius), nil
}

// --- Ввод от бэкенда ---

func (a *App) PointerMoved(x, y float64) {
	a.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.Point{X: x, Y: y}})
}

func (a *App) Click(x, y float64) {
	a.dispatcher.Dispatch(event.Event{Type: event.Clicked, Data: event.Point{X: x, Y: y}})
}

func (a *App) KeyPressed(key string) {
	a.dispatcher.Dispatch(event.Event{Type: event.KeyPressed, Data: key})
}

// Resize запоминает размер окна и сообщает о нём, только если он изменился.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == a.width && height == a.height) {
		return
	}
	a.width, a.height = width, height
	a.dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: width, Height: height}})
}

// Update progresses the page by one frame.
func (a *App) Update(deltaTime float64) {
	if a.closed {
		return
	}
	a.stateMachine.Update(deltaTime)
	a.scheduler.Tick(deltaTime)
}

func (a *App) Draw(canvas render.Canvas) {
	if a.closed || canvas == nil {
		return
	}
	a.stateMachine.Draw(canvas)
}

// Close выходит из текущего состояния и освобождает звук. Повторный вызов ничего не делает.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.stateMachine.Exit()
	a.scheduler.StopAll()
	a.sounds.Dispose()
	log.Printf("app: closed after %d frames", a.scheduler.Frames())
}

// --- PageContext ---

func (a *App) Dispatcher() *event.Dispatcher             { return a.dispatcher }
func (a *App) Scheduler() *scheduler.Scheduler           { return a.scheduler }
func (a *App) Sounds() audio.Sounds                      { return a.sounds }
func (a *App) Settings() config.Settings                 { return a.settings }
func (a *App) Catalog() defs.Catalog                     { return a.catalog }
func (a *App) RNG() *utils.PRNGService                   { return a.rng }
func (a *App) Size() (int, int)                          { return a.width, a.height }
func (a *App) NewPresentation() (ui.Presentation, error) { return a.presentation() }

// State возвращает текущее состояние страницы.
func (a *App) State() state.State { return a.stateMachine.Current() }
