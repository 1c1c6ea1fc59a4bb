package ui

import (
	"testing"

	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/utils"
)

func TestNeuralBackgroundResizeAndDraw(t *testing.T) {
	d := event.NewDispatcher()
	s := scheduler.New(config.MaxDeltaTime)
	cfg := config.Defaults().Network
	n := NewNeuralBackground(cfg, utils.NewPRNGService(3))
	n.Mount(d, s)

	c := newFakeCanvas()
	n.Draw(c)
	if len(c.calls) != 0 {
		t.Fatal("background drew nodes before the first resize")
	}

	d.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: 400, Height: 300}})
	if got := len(n.Network().Nodes()); got != cfg.Nodes {
		t.Fatalf("nodes = %d, want %d", got, cfg.Nodes)
	}

	c = newFakeCanvas()
	n.Draw(c)
	if c.count("fill-circle") != cfg.Nodes {
		t.Errorf("drew %d nodes, want %d", c.count("fill-circle"), cfg.Nodes)
	}
	links := 0
	n.Network().ForEachLink(func(_, _ *component.NetworkNode, _ float64) { links++ })
	if c.count("line") != links {
		t.Errorf("drew %d links, want %d", c.count("line"), links)
	}
	if c.count("glow") != 0 {
		t.Error("pointer glow drawn before the pointer moved")
	}
}

func TestNeuralBackgroundPointerGlow(t *testing.T) {
	d := event.NewDispatcher()
	s := scheduler.New(config.MaxDeltaTime)
	n := NewNeuralBackground(config.Defaults().Network, utils.NewPRNGService(3))
	n.Mount(d, s)
	d.Dispatch(event.Event{Type: event.Resized, Data: event.Size{Width: 400, Height: 300}})
	d.Dispatch(event.Event{Type: event.PointerMoved, Data: event.Point{X: 200, Y: 150}})
	s.Tick(1.0 / 60)

	c := newFakeCanvas()
	n.Draw(c)
	if c.count("glow") != 1 {
		t.Errorf("pointer glow drawn %d times, want 1", c.count("glow"))
	}

	n.Unmount()
	if d.ListenerCount(event.PointerMoved) != 0 || s.Len() != 0 {
		t.Error("background kept subscriptions after unmount")
	}
}
