// internal/state/page_state.go
package state

import (
	"log"

	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/interfaces"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/internal/ui"
	"go-portfolio-fx/pkg/render"
)

var _ State = (*PageState)(nil)

const (
	pageHeader     = "Skills & Technologies"
	headerHeight   = 60
	infoPanelWidth = 420
)

// PageState - основная страница: фон, орбиты навыков, инфо-панель,
// частицы и кнопка звука. Виджеты живут от Enter до Exit.
type PageState struct {
	sm         *StateMachine
	ctx        interfaces.PageContext
	background *ui.NeuralBackground
	orbit      *ui.SkillOrbit
	infoPanel  *ui.SkillInfoPanel
	particles  *ui.ParticleField
	toggle     *ui.SoundToggle
	widgets    []ui.Widget // в порядке отрисовки
}

func NewPageState(sm *StateMachine, ctx interfaces.PageContext) *PageState {
	return &PageState{sm: sm, ctx: ctx}
}

func (p *PageState) Enter() {
	settings := p.ctx.Settings()
	catalog := p.ctx.Catalog()
	engine := system.NewOrbitSystem(catalog.Categories, catalog.Skills, settings.Orbit)

	p.widgets = p.widgets[:0]
	if settings.Network.Enabled {
		p.background = ui.NewNeuralBackground(settings.Network, p.ctx.RNG())
		p.widgets = append(p.widgets, p.background)
	}
	p.orbit = ui.NewSkillOrbit(engine, p.presentation(), p.ctx.Sounds())
	p.infoPanel = ui.NewSkillInfoPanel(engine)
	p.widgets = append(p.widgets, p.orbit, p.infoPanel)
	if settings.Particle.Enabled {
		p.particles = ui.NewParticleField(settings.Particle, p.ctx.RNG())
		p.widgets = append(p.widgets, p.particles)
	}
	p.toggle = ui.NewSoundToggle(p.ctx.Sounds())
	p.widgets = append(p.widgets, p.toggle)

	d := p.ctx.Dispatcher()
	d.Subscribe(event.Resized, p)
	d.Subscribe(event.KeyPressed, p)
	for _, w := range p.widgets {
		w.Mount(d, p.ctx.Scheduler())
	}

	// Узлам сети и частицам нужен размер окна сразу.
	w, h := p.ctx.Size()
	d.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: w, Height: h}})
	log.Printf("page: entered with %d skills, orbit presentation %s", engine.Len(), p.orbit.Presentation().Name())
}

// presentation строит основную раскладку в границе с сеткой в запасе.
func (p *PageState) presentation() ui.Presentation {
	grid := ui.NewGridPresentation()
	primary, err := p.ctx.NewPresentation()
	if err != nil {
		log.Printf("page: orbit presentation unavailable, using grid: %v", err)
		return grid
	}
	if primary == nil || primary.Name() == grid.Name() {
		return grid
	}
	return ui.NewBoundary(primary, grid)
}

func (p *PageState) OnEvent(e event.Event) {
	switch e.Type {
	case event.Resized:
		if size, ok := e.Data.(event.Size); ok {
			p.layout(size.Width, size.Height)
		}
	case event.KeyPressed:
		key, _ := e.Data.(string)
		switch key {
		case "Escape":
			p.orbit.ClearSelection()
		case "M":
			p.toggle.Toggle()
		}
	}
}

// layout делит окно: заголовок сверху, орбиты посередине, панель выезжает снизу.
func (p *PageState) layout(width, height int) {
	w, h := float32(width), float32(height)
	p.orbit.SetBounds(render.Rect{
		X:      0,
		Y:      headerHeight,
		Width:  w,
		Height: max(h-headerHeight-config.InfoPanelHeight, 0),
	})
	pw := min(w, infoPanelWidth)
	p.infoPanel.SetBounds(render.Rect{X: (w - pw) / 2, Y: 0, Width: pw, Height: h})
}

func (p *PageState) Update(deltaTime float64) {
	// Всё покадровое живёт в задачах планировщика, их крутит приложение.
}

func (p *PageState) Draw(canvas render.Canvas) {
	w, h := canvas.Size()
	canvas.FillRect(0, 0, float32(w), float32(h), config.BackgroundColor)
	tw := canvas.TextWidth(pageHeader)
	canvas.Text(pageHeader, (w-tw)/2, headerHeight/2-6, config.TextLightColor)
	for _, widget := range p.widgets {
		widget.Draw(canvas)
	}
}

func (p *PageState) Exit() {
	d := p.ctx.Dispatcher()
	d.Unsubscribe(event.Resized, p)
	d.Unsubscribe(event.KeyPressed, p)
	for _, w := range p.widgets {
		w.Unmount()
	}
	log.Printf("page: exited, %d widgets unmounted", len(p.widgets))
}

// Orbit возвращает виджет орбит.
func (p *PageState) Orbit() *ui.SkillOrbit { return p.orbit }

// InfoPanel возвращает инфо-панель.
func (p *PageState) InfoPanel() *ui.SkillInfoPanel { return p.infoPanel }

// Particles возвращает слой частиц, nil если он выключен.
func (p *PageState) Particles() *ui.ParticleField { return p.particles }

// Background возвращает фоновую сеть, nil если она выключена.
func (p *PageState) Background() *ui.NeuralBackground { return p.background }

// SoundToggle возвращает кнопку звука.
func (p *PageState) SoundToggle() *ui.SoundToggle { return p.toggle }

// Widgets возвращает смонтированные виджеты в порядке отрисовки.
func (p *PageState) Widgets() []ui.Widget { return p.widgets }
