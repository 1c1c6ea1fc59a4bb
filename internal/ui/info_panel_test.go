package ui

import (
	"testing"

	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/system"
)

func mountedPanel(t *testing.T) (*SkillInfoPanel, *event.Dispatcher, *scheduler.Scheduler) {
	t.Helper()
	d := event.NewDispatcher()
	s := scheduler.New(config.MaxDeltaTime)
	p := NewSkillInfoPanel(fourSkills())
	p.SetBounds(fullScreen)
	p.Mount(d, s)
	return p, d, s
}

func tickFor(s *scheduler.Scheduler, seconds float64) {
	for i := 0; i < int(seconds*60); i++ {
		s.Tick(1.0 / 60)
	}
}

func TestInfoPanelSlidesIn(t *testing.T) {
	p, d, s := mountedPanel(t)
	if p.IsVisible {
		t.Fatal("panel visible before any selection")
	}

	d.Dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: 2, Name: "skill-2"}})
	if idx, ok := p.Target(); !ok || idx != 2 {
		t.Fatalf("Target() = %d, %v; want 2", idx, ok)
	}
	s.Tick(1.0 / 60)
	if p.currentY == p.hiddenY() || p.currentY == p.shownY() {
		t.Errorf("panel jumped instead of sliding: y=%v", p.currentY)
	}
	tickFor(s, 0.5)
	if p.currentY != p.shownY() {
		t.Errorf("panel y = %v after half a second, want %v", p.currentY, p.shownY())
	}
}

func TestInfoPanelHidesAndForgetsSkill(t *testing.T) {
	p, d, s := mountedPanel(t)
	d.Dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: 1, Name: "skill-1"}})
	tickFor(s, 0.5)

	d.Dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: system.NoSelection}})
	if !p.IsVisible {
		t.Fatal("panel vanished instead of sliding out")
	}
	tickFor(s, 0.5)
	if p.IsVisible {
		t.Error("panel still visible after sliding out")
	}
	if _, ok := p.Target(); ok {
		t.Error("target kept after the panel left")
	}
}

func TestInfoPanelSwitchesSkillWhileShown(t *testing.T) {
	p, d, s := mountedPanel(t)
	d.Dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: 0}})
	tickFor(s, 0.5)
	d.Dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: 3}})
	if idx, _ := p.Target(); idx != 3 {
		t.Errorf("Target() = %d, want 3", idx)
	}
	if p.currentY != p.shownY() {
		t.Error("panel moved when switching between skills")
	}
}

func TestInfoPanelDraw(t *testing.T) {
	p, d, s := mountedPanel(t)

	c := newFakeCanvas()
	p.Draw(c)
	if len(c.calls) != 0 {
		t.Fatal("hidden panel drew something")
	}

	d.Dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: 1}})
	tickFor(s, 0.5)
	p.Draw(c)
	texts := c.texts()
	if len(texts) != 2 || texts[0] != "skill-1" || texts[1] != "Languages" {
		t.Errorf("panel texts = %q, want skill name and category title", texts)
	}
	p.Draw(nil)
}

func TestInfoPanelIgnoresBadSelection(t *testing.T) {
	p, d, _ := mountedPanel(t)
	d.Dispatch(event.Event{Type: event.SkillSelected, Data: event.Selection{Index: 99}})
	d.Dispatch(event.Event{Type: event.SkillSelected, Data: "oops"})
	if _, ok := p.Target(); ok {
		t.Error("out-of-range selection became the target")
	}
}
