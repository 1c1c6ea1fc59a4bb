package system

import (
	"fmt"
	"math"
	"testing"

	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
)

func testCatalog(perCategory map[string]int) ([]component.Category, []component.Skill) {
	categories := []component.Category{
		{Name: "programming", Title: "Programming", Radius: 3, Layer: 2},
		{Name: "frameworks", Title: "Frameworks", Radius: 5, Layer: 0},
		{Name: "tools", Title: "Tools", Radius: 7, Layer: -2},
	}
	var skills []component.Skill
	for _, c := range categories {
		for i := 0; i < perCategory[c.Name]; i++ {
			skills = append(skills, component.Skill{
				Name:     fmt.Sprintf("%s-%d", c.Name, i),
				Category: c.Name,
			})
		}
	}
	return categories, skills
}

func newTestOrbit(perCategory map[string]int) *OrbitSystem {
	cats, skills := testCatalog(perCategory)
	return NewOrbitSystem(cats, skills, config.Defaults().Orbit)
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLayoutPlacesCategoriesOnRings(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4, "frameworks": 6})

	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}

	for i := 0; i < 4; i++ {
		slot := s.Slot(i)
		wantAngle := float64(i) * math.Pi / 2
		if !near(slot.Angle, wantAngle) {
			t.Errorf("programming %d: angle %v, want %v", i, slot.Angle, wantAngle)
		}
		if r := math.Hypot(slot.X, slot.Z); !near(r, 3) {
			t.Errorf("programming %d: radius %v, want 3", i, r)
		}
		if slot.Y != 2 {
			t.Errorf("programming %d: layer %v, want 2", i, slot.Y)
		}
	}
	for i := 0; i < 6; i++ {
		slot := s.Slot(4 + i)
		wantAngle := float64(i) * math.Pi / 3
		if !near(slot.Angle, wantAngle) {
			t.Errorf("frameworks %d: angle %v, want %v", i, slot.Angle, wantAngle)
		}
		if r := math.Hypot(slot.X, slot.Z); !near(r, 5) {
			t.Errorf("frameworks %d: radius %v, want 5", i, r)
		}
		if slot.Ordinal != i {
			t.Errorf("frameworks %d: ordinal %d", i, slot.Ordinal)
		}
	}

	first := s.Slot(0)
	if !near(first.X, 3) || !near(first.Z, 0) {
		t.Errorf("first programming skill at (%v, %v), want (3, 0)", first.X, first.Z)
	}
}

func TestLayoutSkipsEmptyCategory(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 1})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	slot := s.Slot(0)
	if slot.Angle != 0 || !near(slot.X, 3) {
		t.Errorf("single skill slot = %+v, want angle 0 at radius 3", slot)
	}
}

func TestLayoutIsStableAcrossInteraction(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4, "tools": 3})
	before := append([]OrbitSlot(nil), s.Slots()...)

	s.SetHovered(2)
	s.Toggle(5)
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}

	for i, slot := range s.Slots() {
		if slot != before[i] {
			t.Fatalf("slot %d changed: %+v -> %+v", i, before[i], slot)
		}
	}
}

func TestUnknownCategorySkipped(t *testing.T) {
	cats, skills := testCatalog(map[string]int{"programming": 2})
	skills = append(skills, component.Skill{Name: "ghost", Category: "nowhere"})
	s := NewOrbitSystem(cats, skills, config.Defaults().Orbit)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestToggleSelection(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})

	if _, ok := s.Selected(); ok {
		t.Fatal("nothing should be selected initially")
	}
	if sel, ok := s.Toggle(1); !ok || sel != 1 {
		t.Fatalf("Toggle(1) = %d, %v; want 1, true", sel, ok)
	}
	if sel, ok := s.Toggle(3); !ok || sel != 3 {
		t.Fatalf("Toggle(3) = %d, %v; want 3, true", sel, ok)
	}
	if _, ok := s.Toggle(3); ok {
		t.Fatal("second click on the selected skill must clear selection")
	}
	if sel, ok := s.Toggle(42); ok || sel != NoSelection {
		t.Errorf("out of range toggle changed selection to %d", sel)
	}
}

func TestRotationFrozenWhileSelected(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})
	cfg := s.Config()

	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60)
	}
	if !near(s.Angle(), 10*cfg.RotationSpeed) {
		t.Fatalf("Angle() = %v, want %v", s.Angle(), 10*cfg.RotationSpeed)
	}

	s.Toggle(0)
	frozen := s.Angle()
	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60)
	}
	if s.Angle() != frozen {
		t.Fatalf("rotation advanced while selected: %v -> %v", frozen, s.Angle())
	}

	s.Toggle(0)
	s.Update(1.0 / 60)
	if s.Angle() <= frozen {
		t.Error("rotation did not resume after deselection")
	}
}

func TestAnglesStayWithinOneTurn(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})
	cfg := s.Config()
	frames := int(4*math.Pi/cfg.RotationSpeed) + 1
	for i := 0; i < frames; i++ {
		s.Update(1.0 / 60)
	}

	a := s.Angle()
	if a < -math.Pi || a > math.Pi {
		t.Fatalf("Angle() = %v, want within [-π, π]", a)
	}
	unwrapped := float64(frames) * cfg.RotationSpeed
	if math.Abs(math.Cos(a)-math.Cos(unwrapped)) > 1e-6 || math.Abs(math.Sin(a)-math.Sin(unwrapped)) > 1e-6 {
		t.Errorf("wrapped angle %v does not match %v", a, unwrapped)
	}
	v := s.Transform(0)
	if v.SpinX < -math.Pi || v.SpinX > math.Pi || v.SpinY < -math.Pi || v.SpinY > math.Pi {
		t.Errorf("spin angles not wrapped: %v, %v", v.SpinX, v.SpinY)
	}
}

func TestHoverDoesNotPauseRotation(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})
	s.SetHovered(1)
	s.Update(1.0 / 60)
	if s.Angle() == 0 {
		t.Error("hover must not pause rotation")
	}
}

func TestRotationDisabled(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})
	s.SetRotationEnabled(false)
	s.Update(1.0 / 60)
	if s.Angle() != 0 {
		t.Errorf("Angle() = %v with rotation disabled", s.Angle())
	}
}

func TestSingleHover(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})
	s.SetHovered(0)
	s.SetHovered(2)

	if h, ok := s.Hovered(); !ok || h != 2 {
		t.Fatalf("Hovered() = %d, %v; want 2, true", h, ok)
	}
	if s.Transform(0).Hovered {
		t.Error("previous skill still hovered")
	}
	s.ClearHover()
	if _, ok := s.Hovered(); ok {
		t.Error("hover not cleared")
	}
}

func TestScaleEasesTowardTarget(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})
	s.SetHovered(0)
	s.Toggle(1)

	for i := 0; i < 200; i++ {
		s.Update(0) // без времени пульсация не мешает
	}

	if got := s.Transform(0).Scale; !near(got, 1.4) {
		t.Errorf("hovered scale = %v, want 1.4", got)
	}
	if got := s.Transform(1).Scale; !near(got, 1.2) {
		t.Errorf("selected scale = %v, want 1.2", got)
	}
	if got := s.Transform(2).Scale; !near(got, 1) {
		t.Errorf("idle scale = %v, want 1", got)
	}
}

func TestScaleStepIsLerp(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 1})
	s.SetHovered(0)
	s.Update(0)
	if got := s.Transform(0).Scale; !near(got, 1.04) {
		t.Errorf("scale after one frame = %v, want 1.04", got)
	}
}

func TestGlowByState(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 3})
	cfg := s.Config()
	s.Toggle(1)
	s.SetHovered(2)

	if g := s.Transform(0).Glow; g != cfg.GlowBase {
		t.Errorf("idle glow = %v", g)
	}
	if g := s.Transform(1).Glow; g != cfg.GlowSelected {
		t.Errorf("selected glow = %v", g)
	}
	if g := s.Transform(2).Glow; g != cfg.GlowHover {
		t.Errorf("hovered glow = %v", g)
	}
}

func TestFloatPhaseDiffersPerSkill(t *testing.T) {
	s := newTestOrbit(map[string]int{"programming": 4})
	s.SetRotationEnabled(false)
	s.Update(0.5)

	a, b := s.Transform(0), s.Transform(1)
	if near(a.Y, b.Y) {
		t.Error("skills must not float in lockstep")
	}
	for i := 0; i < s.Len(); i++ {
		v := s.Transform(i)
		if math.Abs(v.Y-2) > s.Config().FloatAmplitude+1e-9 {
			t.Errorf("skill %d floats out of amplitude: y = %v", i, v.Y)
		}
	}
}

func TestTransformFollowsGroupRotation(t *testing.T) {
	s := newTestOrbit(map[string]int{"frameworks": 2})
	for i := 0; i < 25; i++ {
		s.Update(1.0 / 60)
	}
	v := s.Transform(0)
	if !near(v.Angle, s.Angle()) {
		t.Errorf("angle = %v, want %v", v.Angle, s.Angle())
	}
	if !near(math.Hypot(v.X, v.Z), 5) {
		t.Errorf("rotated skill left its ring: (%v, %v)", v.X, v.Z)
	}
}
