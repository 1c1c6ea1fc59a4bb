package ui

import (
	"testing"

	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
)

type toggleRecorder struct {
	got []bool
}

func (r *toggleRecorder) OnEvent(e event.Event) {
	if on, ok := e.Data.(bool); ok {
		r.got = append(r.got, on)
	}
}

func mountedToggle(t *testing.T) (*SoundToggle, *fakeSounds, *event.Dispatcher, *scheduler.Scheduler) {
	t.Helper()
	sounds := &fakeSounds{}
	sounds.Enable()
	d := event.NewDispatcher()
	s := scheduler.New(config.MaxDeltaTime)
	b := NewSoundToggle(sounds)
	b.Mount(d, s)
	return b, sounds, d, s
}

func TestSoundToggleClick(t *testing.T) {
	b, sounds, d, _ := mountedToggle(t)
	rec := &toggleRecorder{}
	d.Subscribe(event.SoundToggled, rec)
	at := event.Point{X: float64(b.X), Y: float64(b.Y)}

	d.Dispatch(event.Event{Type: event.Clicked, Data: at})
	if sounds.Enabled() {
		t.Fatal("first click must mute")
	}
	if sounds.successes != 0 {
		t.Error("muting played a sound")
	}

	d.Dispatch(event.Event{Type: event.Clicked, Data: at})
	if !sounds.Enabled() {
		t.Fatal("second click must unmute")
	}
	if sounds.successes != 1 {
		t.Errorf("unmute played %d success sounds, want 1", sounds.successes)
	}
	if len(rec.got) != 2 || rec.got[0] || !rec.got[1] {
		t.Errorf("SoundToggled events = %v, want [false true]", rec.got)
	}
}

func TestSoundToggleIgnoresClicksElsewhere(t *testing.T) {
	b, sounds, d, _ := mountedToggle(t)
	d.Dispatch(event.Event{Type: event.Clicked, Data: event.Point{X: float64(b.X) - 40, Y: float64(b.Y)}})
	if !sounds.Enabled() {
		t.Error("click outside the button toggled sound")
	}
}

func TestSoundTogglePulse(t *testing.T) {
	b, _, _, s := mountedToggle(t)
	if got := b.scale(); got != 1 {
		t.Errorf("idle scale = %v, want 1", got)
	}
	b.Toggle()
	if got := b.scale(); got < 1.29 || got > 1.31 {
		t.Errorf("scale right after click = %v, want 1.3", got)
	}
	for i := 0; i < 60; i++ {
		s.Tick(1.0 / 60)
	}
	if got := b.scale(); got > 1.001 {
		t.Errorf("scale after a second = %v, pulse did not decay", got)
	}
}

func TestSoundToggleFollowsResize(t *testing.T) {
	b, _, d, _ := mountedToggle(t)
	d.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: 800, Height: 600}})
	if b.X != 800-config.SoundButtonOffset || b.Y != config.SoundButtonOffset {
		t.Errorf("button at (%v, %v) after resize", b.X, b.Y)
	}
}

func TestSoundToggleDrawShowsState(t *testing.T) {
	b, sounds, _, _ := mountedToggle(t)

	on := newFakeCanvas()
	b.Draw(on)
	sounds.Disable()
	off := newFakeCanvas()
	b.Draw(off)

	// Включённый динамик рисует волну кругом, выключенный - крестик линиями.
	if on.count("stroke-circle") != 2 || off.count("stroke-circle") != 1 {
		t.Errorf("stroke circles on=%d off=%d", on.count("stroke-circle"), off.count("stroke-circle"))
	}
	if off.count("line") != on.count("line")+2 {
		t.Errorf("lines on=%d off=%d", on.count("line"), off.count("line"))
	}
}

func TestSoundToggleNilSounds(t *testing.T) {
	b := NewSoundToggle(nil)
	if b.Toggle() != true {
		t.Error("Toggle() on silent sounds should report enabled")
	}
	b.Draw(newFakeCanvas())
	b.Draw(nil)
}
