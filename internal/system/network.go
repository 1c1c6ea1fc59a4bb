package system

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/utils"
)

// NetworkSystem ведёт фоновую "нейросеть": узлы тянутся к сглаженному курсору,
// возвращаются на место и соединяются линиями, если близко.
type NetworkSystem struct {
	cfg    config.NetworkConfig
	rng    *utils.PRNGService
	nodes  []component.NetworkNode
	spring component.Spring
	target component.Pointer
	width  float64
	height float64

	motion     harmonica.Spring
	springStep float64
}

// NewNetworkSystem создаёт сеть без узлов; они появятся при первом Resize.
func NewNetworkSystem(cfg config.NetworkConfig, rng *utils.PRNGService) *NetworkSystem {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &NetworkSystem{cfg: cfg, rng: rng}
}

// Resize раскидывает узлы заново по новому окну.
func (s *NetworkSystem) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
	if len(s.nodes) != s.cfg.Nodes {
		s.nodes = make([]component.NetworkNode, s.cfg.Nodes)
		for i := range s.nodes {
			s.nodes[i] = component.NetworkNode{
				Drift: component.Velocity{
					X: s.rng.Spread(s.cfg.DriftSpeed / 2),
					Y: s.rng.Spread(s.cfg.DriftSpeed / 2),
				},
				Radius:  s.rng.Range(2, 5),
				Opacity: s.rng.Range(0.3, 0.8),
			}
		}
	}
	for i := range s.nodes {
		n := &s.nodes[i]
		n.Origin = component.Position{X: s.rng.Range(0, s.width), Y: s.rng.Range(0, s.height)}
		n.Pos = n.Origin
	}
}

// PointerMoved задаёт цель для пружины курсора.
func (s *NetworkSystem) PointerMoved(x, y float64) {
	if !s.target.Valid {
		s.spring = component.Spring{X: x, Y: y}
	}
	s.target = component.Pointer{X: x, Y: y, Valid: true}
}

// Update выполняет один кадр.
func (s *NetworkSystem) Update(deltaTime float64) {
	s.stepSpring(deltaTime)

	for i := range s.nodes {
		n := &s.nodes[i]
		if s.target.Valid {
			dx := s.spring.X - n.Pos.X
			dy := s.spring.Y - n.Pos.Y
			dist := math.Hypot(dx, dy)
			if dist < s.cfg.PointerRadius {
				force := (s.cfg.PointerRadius - dist) / s.cfg.PointerRadius
				n.Pos.X += dx * force * s.cfg.PointerPull
				n.Pos.Y += dy * force * s.cfg.PointerPull
			}
		}

		n.Pos.X += (n.Origin.X - n.Pos.X) * s.cfg.ReturnRate
		n.Pos.Y += (n.Origin.Y - n.Pos.Y) * s.cfg.ReturnRate

		n.Pos.X += n.Drift.X
		n.Pos.Y += n.Drift.Y

		if n.Pos.X < 0 || n.Pos.X > s.width {
			n.Drift.X = -n.Drift.X
		}
		if n.Pos.Y < 0 || n.Pos.Y > s.height {
			n.Drift.Y = -n.Drift.Y
		}
	}
}

// stepSpring ведёт сглаженный курсор к цели. Жёсткость и затухание заданы
// для массы 1 и пересчитываются в частоту и коэффициент затухания harmonica.
func (s *NetworkSystem) stepSpring(deltaTime float64) {
	if !s.target.Valid || deltaTime <= 0 {
		return
	}
	if deltaTime != s.springStep {
		s.springStep = deltaTime
		s.motion = newPointerSpring(deltaTime, s.cfg.SpringStiffness, s.cfg.SpringDamping)
	}
	s.spring.X, s.spring.VX = s.motion.Update(s.spring.X, s.spring.VX, s.target.X)
	s.spring.Y, s.spring.VY = s.motion.Update(s.spring.Y, s.spring.VY, s.target.Y)
}

func newPointerSpring(deltaTime, stiffness, damping float64) harmonica.Spring {
	omega := math.Sqrt(math.Max(stiffness, 0))
	zeta := 0.0
	if omega > 0 {
		zeta = damping / (2 * omega)
	}
	return harmonica.NewSpring(deltaTime, omega, zeta)
}

// ForEachLink вызывает fn для каждой пары узлов ближе LinkDistance
// с прозрачностью линии (d_max - d) / d_max * LinkOpacity.
func (s *NetworkSystem) ForEachLink(fn func(a, b *component.NetworkNode, alpha float64)) {
	for i := range s.nodes {
		for j := i + 1; j < len(s.nodes); j++ {
			a, b := &s.nodes[i], &s.nodes[j]
			dist := utils.Distance(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y)
			if dist < s.cfg.LinkDistance {
				fn(a, b, (s.cfg.LinkDistance-dist)/s.cfg.LinkDistance*s.cfg.LinkOpacity)
			}
		}
	}
}

// Nodes возвращает узлы сети.
func (s *NetworkSystem) Nodes() []component.NetworkNode {
	return s.nodes
}

// Pointer возвращает сглаженное положение курсора.
func (s *NetworkSystem) Pointer() (x, y float64, ok bool) {
	return s.spring.X, s.spring.Y, s.target.Valid
}
