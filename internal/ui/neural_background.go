// internal/ui/neural_background.go
package ui

import (
	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/event"
	"go-portfolio-fx/internal/scheduler"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/internal/utils"
	"go-portfolio-fx/pkg/render"
)

// NeuralBackground - сеть узлов за страницей, тянется к курсору.
type NeuralBackground struct {
	lifecycle
	network *system.NetworkSystem
	color   render.PageColors
}

func NewNeuralBackground(cfg config.NetworkConfig, rng *utils.PRNGService) *NeuralBackground {
	return &NeuralBackground{
		lifecycle: newLifecycle("neural-background"),
		network:   system.NewNetworkSystem(cfg, rng),
		color:     config.Colors(),
	}
}

func (n *NeuralBackground) Mount(d *event.Dispatcher, s *scheduler.Scheduler) {
	n.mount(d, s, n, n.network.Update, event.PointerMoved, event.Resized)
}

func (n *NeuralBackground) Unmount() {
	n.unmount()
}

func (n *NeuralBackground) OnEvent(e event.Event) {
	switch e.Type {
	case event.PointerMoved:
		if x, y, ok := pointData(e); ok {
			n.network.PointerMoved(x, y)
		}
	case event.Resized:
		if w, h, ok := sizeData(e); ok {
			n.network.Resize(w, h)
		}
	}
}

func (n *NeuralBackground) Draw(canvas render.Canvas) {
	if canvas == nil {
		return
	}
	base := n.color.NetworkColor
	n.network.ForEachLink(func(a, b *component.NetworkNode, alpha float64) {
		canvas.Line(float32(a.Pos.X), float32(a.Pos.Y), float32(b.Pos.X), float32(b.Pos.Y), 1, render.WithAlpha(base, alpha))
	})
	for _, node := range n.network.Nodes() {
		canvas.FillCircle(float32(node.Pos.X), float32(node.Pos.Y), float32(node.Radius), render.WithAlpha(base, node.Opacity))
	}
	if x, y, ok := n.network.Pointer(); ok {
		canvas.Glow(float32(x), float32(y), 60, render.WithAlpha(base, 0.15))
	}
}

// Network даёт доступ к движку сети.
func (n *NeuralBackground) Network() *system.NetworkSystem { return n.network }
