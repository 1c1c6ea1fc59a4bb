// internal/system/particle.go
package system

import (
	"math"

	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/utils"
	"go-portfolio-fx/pkg/render"
)

// ParticleSystem ведёт поле частиц: рождение по движению мыши и клику,
// кинематику за кадр, затухание и ограничение численности.
// Вся работа идёт в одном потоке кадров, блокировки не нужны.
type ParticleSystem struct {
	cfg       config.ParticleConfig
	rng       *utils.PRNGService
	particles []component.Particle
	pointer   component.Pointer
	width     int
	height    int
}

// NewParticleSystem создаёт пустое поле.
func NewParticleSystem(cfg config.ParticleConfig, rng *utils.PRNGService) *ParticleSystem {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		particles: make([]component.Particle, 0, cfg.Max),
	}
}

// Resize запоминает новый размер растра. Позиции частиц абсолютные, их не трогаем.
func (s *ParticleSystem) Resize(width, height int) {
	s.width, s.height = width, height
}

// Size возвращает последний известный размер растра.
func (s *ParticleSystem) Size() (int, int) {
	return s.width, s.height
}

// PointerMoved обновляет курсор и рождает след из PerMove частиц.
func (s *ParticleSystem) PointerMoved(x, y float64) {
	s.pointer = component.Pointer{X: x, Y: y, Valid: true}
	for i := 0; i < s.cfg.PerMove; i++ {
		p := s.newParticle(
			x+s.rng.Spread(s.cfg.MoveJitter),
			y+s.rng.Spread(s.cfg.MoveJitter),
			component.SpawnTrail,
		)
		s.add(p)
	}
}

// Clicked рождает взрыв из PerClick частиц с большей скоростью и размером.
func (s *ParticleSystem) Clicked(x, y float64) {
	for i := 0; i < s.cfg.PerClick; i++ {
		s.add(s.newParticle(x, y, component.SpawnBurst))
	}
}

// Update выполняет один кадр: притяжение к курсору, интегрирование,
// сопротивление, затухание, удаление мёртвых и обрезку лишних.
func (s *ParticleSystem) Update() {
	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		s.attract(&p)

		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Vel.X *= s.cfg.Drag
		p.Vel.Y *= s.cfg.Drag

		p.Life -= p.Decay
		if p.Life <= 0 {
			continue
		}
		alive = append(alive, p)
	}
	// Хвост старого слайса больше не нужен.
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = component.Particle{}
	}
	s.particles = alive
	s.truncate()
}

// attract мягко тянет частицу к курсору: чем ближе, тем сильнее.
func (s *ParticleSystem) attract(p *component.Particle) {
	if !s.pointer.Valid || s.cfg.AttractionRadius <= 0 {
		return
	}
	dx := s.pointer.X - p.Pos.X
	dy := s.pointer.Y - p.Pos.Y
	dist := math.Hypot(dx, dy)
	if dist >= s.cfg.AttractionRadius || dist == 0 {
		return
	}
	force := (s.cfg.AttractionRadius - dist) * s.cfg.AttractionStrength
	p.Vel.X += dx / dist * force
	p.Vel.Y += dy / dist * force
}

func (s *ParticleSystem) newParticle(x, y float64, kind component.SpawnKind) component.Particle {
	speed, sizeMin, sizeMax := s.cfg.MoveSpeed, s.cfg.MoveSizeMin, s.cfg.MoveSizeMax
	if kind == component.SpawnBurst {
		speed, sizeMin, sizeMax = s.cfg.ClickSpeed, s.cfg.ClickSizeMin, s.cfg.ClickSizeMax
	}
	hue := s.rng.Range(s.cfg.HueMin, s.cfg.HueMax)
	return component.Particle{
		Pos:     component.Position{X: x, Y: y},
		Vel:     component.Velocity{X: s.rng.Spread(speed), Y: s.rng.Spread(speed)},
		Size:    s.rng.Range(sizeMin, sizeMax),
		Color:   render.HSL(hue, s.cfg.Saturation, s.cfg.Lightness),
		Opacity: s.rng.Range(s.cfg.OpacityMin, s.cfg.OpacityMax),
		Life:    1,
		Decay:   s.rng.Range(s.cfg.DecayMin, s.cfg.DecayMax),
		Kind:    kind,
	}
}

func (s *ParticleSystem) add(p component.Particle) {
	s.particles = append(s.particles, p)
	s.truncate()
}

// truncate отбрасывает самые старые частицы (с начала слайса) сверх лимита.
func (s *ParticleSystem) truncate() {
	excess := len(s.particles) - s.cfg.Max
	if excess <= 0 {
		return
	}
	n := copy(s.particles, s.particles[excess:])
	for i := n; i < len(s.particles); i++ {
		s.particles[i] = component.Particle{}
	}
	s.particles = s.particles[:n]
}

// Particles возвращает активные частицы. Слайс принадлежит системе
// и действителен до следующего изменения поля.
func (s *ParticleSystem) Particles() []component.Particle {
	return s.particles
}

// Count возвращает число активных частиц.
func (s *ParticleSystem) Count() int {
	return len(s.particles)
}

// Pointer возвращает последнее положение курсора.
func (s *ParticleSystem) Pointer() component.Pointer {
	return s.pointer
}

// Clear удаляет все частицы.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}
