// internal/state/intro_state.go
package state

import (
	"log"
	"math"

	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/interfaces"
	"go-portfolio-fx/pkg/render"
)

var _ State = (*IntroState)(nil)

const (
	introTitle  = "Skills & Technologies"
	introPrompt = "click anywhere to enter"
)

// IntroState - заставка до первого действия пользователя. Звук можно
// запустить только после жеста, поэтому Init вызывается здесь.
type IntroState struct {
	sm      *StateMachine
	ctx     interfaces.PageContext
	elapsed float64
	entered bool
}

func NewIntroState(sm *StateMachine, ctx interfaces.PageContext) *IntroState {
	return &IntroState{sm: sm, ctx: ctx}
}

func (s *IntroState) Enter() {
	d := s.ctx.Dispatcher()
	d.Subscribe(event.Clicked, s)
	d.Subscribe(event.KeyPressed, s)
}

func (s *IntroState) OnEvent(e event.Event) {
	s.entered = true
}

func (s *IntroState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if !s.entered {
		return
	}
	if err := s.ctx.Sounds().Init(); err != nil {
		log.Printf("intro: sound disabled: %v", err)
	}
	s.sm.SetState(NewPageState(s.sm, s.ctx))
}

func (s *IntroState) Draw(canvas render.Canvas) {
	w, h := canvas.Size()
	canvas.FillRect(0, 0, float32(w), float32(h), config.BackgroundColor)

	tw := canvas.TextWidth(introTitle)
	canvas.Text(introTitle, (w-tw)/2, h/2-20, config.TextLightColor)

	// Подсказка мягко мигает.
	alpha := 0.45 + 0.35*math.Sin(s.elapsed*3)
	pw := canvas.TextWidth(introPrompt)
	canvas.Text(introPrompt, (w-pw)/2, h/2+10, render.WithAlpha(config.TextLightColor, alpha))
}

func (s *IntroState) Exit() {
	d := s.ctx.Dispatcher()
	d.Unsubscribe(event.Clicked, s)
	d.Unsubscribe(event.KeyPressed, s)
}
