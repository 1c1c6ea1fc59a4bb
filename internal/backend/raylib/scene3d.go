// internal/backend/raylib/scene3d.go
package raylib

import (
	"errors"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-portfolio-fx/internal/assets"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/system"
	"go-portfolio-fx/internal/ui"
	"go-portfolio-fx/pkg/render"
)

// ErrNoContext - окно raylib ещё не открыто, 3D-сцену строить не на чем.
var ErrNoContext = errors.New("raylib: no rendering context")

const (
	sphereRings      = 16
	sphereSlices     = 16
	coreRadius       = 0.6
	satelliteCount   = 8
	satelliteSpeed   = 2.0
	labelOffset      = 0.35
	cameraFovy       = 45.0
	cameraDistance   = 16.0
	cameraHeight     = 7.0
	hoverRingFactor  = 1.4
	selectRingFactor = 1.7
	glowFactor       = 1.6
)

var _ ui.Presentation = (*Scene3D)(nil)

// Scene3D рисует орбиты сферами в перспективе и выбирает орб лучом из-под курсора.
type Scene3D struct {
	cfg    config.OrbitConfig
	models *assets.ModelManager
	camera rl.Camera3D
	bounds render.Rect
	colors render.PageColors
}

// NewScene3D строит сцену. Без открытого окна возвращает ErrNoContext,
// паника raylib при создании сферы возвращается ошибкой.
func NewScene3D(cfg config.OrbitConfig, models *assets.ModelManager) (scene *Scene3D, err error) {
	if !rl.IsWindowReady() {
		return nil, ErrNoContext
	}
	defer func() {
		if r := recover(); r != nil {
			scene, err = nil, fmt.Errorf("raylib: scene setup panicked: %v", r)
		}
	}()
	if err := models.LoadSphere(assets.OrbModelID, 1, sphereRings, sphereSlices); err != nil {
		return nil, fmt.Errorf("failed to build orb model: %w", err)
	}

	camera := rl.Camera3D{}
	camera.Position = rl.NewVector3(0, cameraHeight, cameraDistance)
	camera.Target = rl.NewVector3(0, 0, 0)
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Fovy = cameraFovy
	camera.Projection = rl.CameraPerspective

	return &Scene3D{
		cfg:    cfg,
		models: models,
		camera: camera,
		colors: config.Colors(),
	}, nil
}

func (s *Scene3D) Name() string { return "3d" }

func (s *Scene3D) Layout(bounds render.Rect) { s.bounds = bounds }

// orbPosition возвращает центр и радиус орба i в мировых координатах.
func (s *Scene3D) orbPosition(orbit *system.OrbitSystem, i int) (rl.Vector3, float32) {
	v := orbit.Transform(i)
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z)), float32(s.cfg.OrbRadius * v.Scale)
}

func (s *Scene3D) Draw(canvas render.Canvas, orbit *system.OrbitSystem) {
	if orbit == nil {
		return
	}
	model, ok := s.models.GetModel(assets.OrbModelID)
	if !ok {
		panic("scene3d: orb model unloaded")
	}

	b := s.bounds
	skills := orbit.Skills()
	inMode(func() { rl.BeginScissorMode(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height)) }, rl.EndScissorMode, func() {
		inMode(func() { rl.BeginMode3D(s.camera) }, rl.EndMode3D, func() {
			s.drawWorld(model, orbit)
		})
	})

	if canvas == nil {
		return
	}
	for i, skill := range skills {
		pos, r := s.orbPosition(orbit, i)
		pos.Y -= r + labelOffset
		screen := rl.GetWorldToScreen(pos, s.camera)
		label := s.colors.TextLightColor
		if v := orbit.Transform(i); !v.Hovered && !v.Selected {
			label = render.WithAlpha(label, 0.7)
		}
		w := canvas.TextWidth(skill.Name)
		canvas.Text(skill.Name, int(screen.X)-w/2, int(screen.Y), label)
	}
}

func (s *Scene3D) drawWorld(model rl.Model, orbit *system.OrbitSystem) {
	for _, c := range orbit.Categories() {
		rl.DrawCircle3D(rl.NewVector3(0, float32(c.Layer), 0), float32(c.Radius), rl.NewVector3(1, 0, 0), 90, colorToRL(s.colors.RingGuideColor))
	}
	rl.DrawSphere(rl.NewVector3(0, 0, 0), coreRadius, colorToRL(s.colors.CoreColor))
	for i := range orbit.Skills() {
		s.drawOrb(model, orbit, i)
	}
}

// inMode выполняет body между begin и end. end вызывается и при панике в body.
func inMode(begin, end func(), body func()) {
	begin()
	defer end()
	body()
}

func (s *Scene3D) drawOrb(model rl.Model, orbit *system.OrbitSystem, i int) {
	v := orbit.Transform(i)
	skill := orbit.Skills()[i]
	pos, r := s.orbPosition(orbit, i)
	col := colorToRL(skill.Color)
	scale := rl.NewVector3(r, r, r)
	axis := rl.Vector3Normalize(rl.NewVector3(float32(math.Sin(v.SpinX)), 1, float32(math.Cos(v.SpinX))))
	spin := float32(v.SpinY * rl.Rad2deg)

	rl.DrawModelEx(model, pos, axis, spin, scale, col)
	rl.DrawModelWiresEx(model, pos, axis, spin, rl.Vector3Scale(scale, 1.01), colorToRL(render.WithAlpha(render.DarkenColor(skill.Color), 0.5)))

	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawSphere(pos, r*glowFactor, colorToRL(render.WithAlpha(skill.Color, v.Glow)))
	rl.EndBlendMode()

	if v.Hovered {
		rl.DrawCircle3D(pos, r*hoverRingFactor, rl.NewVector3(1, 0, 0), 90, col)
	}
	if v.Selected {
		rl.DrawCircle3D(pos, r*selectRingFactor, rl.NewVector3(1, 0, 0), 90, colorToRL(s.colors.TextLightColor))
		for k := 0; k < satelliteCount; k++ {
			a := orbit.Elapsed()*satelliteSpeed + float64(k)*2*math.Pi/satelliteCount
			offset := rl.NewVector3(float32(math.Cos(a))*r*2, 0, float32(math.Sin(a))*r*2)
			rl.DrawSphere(rl.Vector3Add(pos, offset), r*0.12, col)
		}
	}
}

// HitTest пускает луч из точки экрана и берёт ближайшую пересечённую сферу.
func (s *Scene3D) HitTest(x, y float64, orbit *system.OrbitSystem) (int, bool) {
	ray := rl.GetMouseRay(rl.NewVector2(float32(x), float32(y)), s.camera)
	best, bestDist := system.NoSelection, float32(math.MaxFloat32)
	for i := 0; i < orbit.Len(); i++ {
		pos, r := s.orbPosition(orbit, i)
		hit := rl.GetRayCollisionSphere(ray, pos, r)
		if hit.Hit && hit.Distance < bestDist {
			best, bestDist = i, hit.Distance
		}
	}
	return best, best != system.NoSelection
}
