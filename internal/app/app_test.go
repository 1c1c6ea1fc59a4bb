package app

import (
	"errors"
	"image/color"
	"testing"

	"go-portfolio-fx/internal/audio"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/defs"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/state"
	"go-portfolio-fx/internal/ui"
)

type trackingSounds struct {
	audio.Nop
	inits, disposes int
}

func (s *trackingSounds) Init() error {
	s.inits++
	return nil
}

func (s *trackingSounds) Dispose() { s.disposes++ }

type nullCanvas struct{ texts int }

func (c *nullCanvas) Size() (int, int)                                   { return 1200, 900 }
func (c *nullCanvas) FillCircle(x, y, r float32, clr color.Color)        {}
func (c *nullCanvas) StrokeCircle(x, y, r, w float32, clr color.Color)   {}
func (c *nullCanvas) FillRect(x, y, w, h float32, clr color.Color)       {}
func (c *nullCanvas) StrokeRect(x, y, w, h, sw float32, clr color.Color) {}
func (c *nullCanvas) Line(x1, y1, x2, y2, w float32, clr color.Color)    {}
func (c *nullCanvas) Glow(x, y, r float32, clr color.RGBA)               {}
func (c *nullCanvas) Text(s string, x, y int, clr color.Color)           { c.texts++ }
func (c *nullCanvas) TextWidth(s string) int                             { return len(s) * 7 }

func newTestApp(t *testing.T, skipIntro bool) (*App, *trackingSounds) {
	t.Helper()
	settings := config.Defaults()
	settings.Window.Seed = 42
	sounds := &trackingSounds{}
	a := New(Options{Settings: settings, Sounds: sounds, SkipIntro: skipIntro})
	return a, sounds
}

func TestAppStartsWithIntro(t *testing.T) {
	a, sounds := newTestApp(t, false)
	if _, ok := a.State().(*state.IntroState); !ok {
		t.Fatalf("State() = %T, want intro", a.State())
	}

	a.Click(100, 100)
	a.Update(1.0 / 60)
	if _, ok := a.State().(*state.PageState); !ok {
		t.Fatalf("State() = %T after click, want page", a.State())
	}
	if sounds.inits != 1 {
		t.Errorf("sound Init called %d times", sounds.inits)
	}
}

func TestAppSkipIntro(t *testing.T) {
	a, sounds := newTestApp(t, true)
	if _, ok := a.State().(*state.PageState); !ok {
		t.Fatalf("State() = %T, want page", a.State())
	}
	if sounds.inits != 1 {
		t.Errorf("sound Init called %d times with -dev", sounds.inits)
	}
}

func TestAppDefaultCatalog(t *testing.T) {
	a, _ := newTestApp(t, true)
	if got := len(a.Catalog().Skills); got != len(defs.DefaultCatalog().Skills) {
		t.Errorf("catalog has %d skills", got)
	}
}

func TestAppInputReachesPage(t *testing.T) {
	a, _ := newTestApp(t, true)
	page := a.State().(*state.PageState)

	a.Click(300, 300)
	if got := page.Particles().System().Count(); got != config.ParticlesPerClick {
		t.Errorf("particles after click = %d, want %d", got, config.ParticlesPerClick)
	}
	a.Update(1.0 / 60)
	if page.Orbit().Orbit().Elapsed() == 0 {
		t.Error("Update did not tick the scheduler")
	}
}

func TestAppResizeOnlyOnChange(t *testing.T) {
	a, _ := newTestApp(t, true)
	rec := &sizeRecorder{}
	a.Dispatcher().Subscribe(event.Resized, rec)

	a.Resize(1200, 900)
	a.Resize(0, 500)
	a.Resize(1024, 768)
	a.Resize(1024, 768)

	if len(rec.sizes) != 1 || rec.sizes[0] != (event.Size{Width: 1024, Height: 768}) {
		t.Errorf("Resized events = %v", rec.sizes)
	}
	if w, h := a.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

type sizeRecorder struct{ sizes []event.Size }

func (r *sizeRecorder) OnEvent(e event.Event) {
	if s, ok := e.Data.(event.Size); ok {
		r.sizes = append(r.sizes, s)
	}
}

func TestAppPresentationFactory(t *testing.T) {
	settings := config.Defaults()
	failing := func() (ui.Presentation, error) { return nil, errors.New("window not ready") }
	a := New(Options{Settings: settings, Presentation: failing, SkipIntro: true})
	page := a.State().(*state.PageState)
	if got := page.Orbit().Presentation().Name(); got != "grid" {
		t.Errorf("presentation = %q, want grid fallback", got)
	}
}

func TestAppClose(t *testing.T) {
	a, sounds := newTestApp(t, true)
	d := a.Dispatcher()

	a.Close()
	a.Close()

	if sounds.disposes != 1 {
		t.Errorf("Dispose called %d times, want 1", sounds.disposes)
	}
	if a.State() != nil {
		t.Error("state not exited on close")
	}
	if d.ListenerCount(event.Clicked) != 0 || a.Scheduler().Len() != 0 {
		t.Error("listeners or tasks left after close")
	}

	c := &nullCanvas{}
	a.Update(1.0 / 60)
	a.Draw(c)
	if c.texts != 0 {
		t.Error("closed app still draws")
	}
}

func TestAppDraw(t *testing.T) {
	a, _ := newTestApp(t, false)
	c := &nullCanvas{}
	a.Draw(c)
	if c.texts == 0 {
		t.Error("intro drew nothing")
	}
	a.Draw(nil)
}
