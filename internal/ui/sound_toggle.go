// internal/ui/sound_toggle.go
package ui

import (
	"image/color"
	"math"

	"go-portfolio-fx/internal/audio"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/pkg/render"
)

// SoundToggle - круглая кнопка в правом верхнем углу, включает и выключает звук.
// После клика кнопка коротко "вздрагивает".
type SoundToggle struct {
	lifecycle
	sounds     audio.Sounds
	X, Y       float32
	Radius     float32
	hovered    bool
	sinceClick float64
}

func NewSoundToggle(sounds audio.Sounds) *SoundToggle {
	if sounds == nil {
		sounds = &audio.Nop{}
	}
	return &SoundToggle{
		lifecycle:  newLifecycle("sound-toggle"),
		sounds:     sounds,
		X:          config.ScreenWidth - config.SoundButtonOffset,
		Y:          config.SoundButtonOffset,
		Radius:     config.SoundButtonRadius,
		sinceClick: math.Inf(1),
	}
}

func (b *SoundToggle) Mount(d *event.Dispatcher, s *scheduler.Scheduler) {
	b.mount(d, s, b, b.update, event.PointerMoved, event.Clicked, event.Resized)
}

func (b *SoundToggle) Unmount() {
	b.unmount()
}

func (b *SoundToggle) update(deltaTime float64) {
	b.sinceClick += deltaTime
}

// Contains проверяет попадание точки в кнопку.
func (b *SoundToggle) Contains(x, y float64) bool {
	return math.Hypot(x-float64(b.X), y-float64(b.Y)) <= float64(b.Radius)
}

func (b *SoundToggle) OnEvent(e event.Event) {
	switch e.Type {
	case event.Resized:
		if w, _, ok := sizeData(e); ok {
			b.X = float32(w - config.SoundButtonOffset)
			b.Y = config.SoundButtonOffset
		}
	case event.PointerMoved:
		if x, y, ok := pointData(e); ok {
			b.hovered = b.Contains(x, y)
		}
	case event.Clicked:
		if x, y, ok := pointData(e); ok && b.Contains(x, y) {
			b.Toggle()
		}
	}
}

// Toggle переключает звук; при включении играет короткое арпеджио.
func (b *SoundToggle) Toggle() bool {
	on := b.sounds.Toggle()
	if on {
		b.sounds.PlaySuccess()
	}
	b.sinceClick = 0
	b.dispatch(event.Event{Type: event.SoundToggled, Data: on})
	return on
}

// scale - масштаб кнопки после клика, как у индикаторов: 1.3 и быстрое затухание.
func (b *SoundToggle) scale() float32 {
	return float32(1 + 0.3*math.Exp(-b.sinceClick*8))
}

func (b *SoundToggle) Draw(canvas render.Canvas) {
	if canvas == nil {
		return
	}
	on := b.sounds.Enabled()
	bg := config.SoundOffColor
	if on {
		bg = config.SoundOnColor
	}
	if b.hovered {
		bg.A = 255
	}
	r := b.Radius * b.scale()
	canvas.FillCircle(b.X, b.Y, r, bg)
	canvas.StrokeCircle(b.X, b.Y, r, 1.5, color.White)

	// Динамик: корпус и раструб.
	s := r * 0.35
	canvas.FillRect(b.X-s*1.4, b.Y-s*0.5, s*0.8, s, config.TextLightColor)
	canvas.Line(b.X-s*0.6, b.Y-s*0.5, b.X+s*0.2, b.Y-s*1.1, 2, config.TextLightColor)
	canvas.Line(b.X-s*0.6, b.Y+s*0.5, b.X+s*0.2, b.Y+s*1.1, 2, config.TextLightColor)
	canvas.Line(b.X+s*0.2, b.Y-s*1.1, b.X+s*0.2, b.Y+s*1.1, 2, config.TextLightColor)
	if on {
		canvas.StrokeCircle(b.X+s*0.4, b.Y, s*0.9, 1.5, config.TextLightColor)
		return
	}
	canvas.Line(b.X+s*0.6, b.Y-s*0.6, b.X+s*1.6, b.Y+s*0.6, 2, config.TextLightColor)
	canvas.Line(b.X+s*0.6, b.Y+s*0.6, b.X+s*1.6, b.Y-s*0.6, 2, config.TextLightColor)
}
