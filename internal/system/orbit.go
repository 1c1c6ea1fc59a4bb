// internal/system/orbit.go
package system

import (
	"log"
	"math"

	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/utils"
)

// NoSelection - значение индекса, когда ни один навык не выбран.
const NoSelection = -1

// OrbitSlot - статическое место навыка на кольце. Зависит только от категории
// и порядкового номера внутри неё, при наведении и выборе не пересчитывается.
type OrbitSlot struct {
	Skill    int     // индекс в Skills()
	Category int     // индекс в Categories()
	Ordinal  int     // порядковый номер внутри категории
	Angle    float64 // i/k * 2π
	X, Y, Z  float64 // (r·cos θ, layer, r·sin θ)
}

// OrbitSystem раскладывает навыки по концентрическим кольцам и ведёт
// покадровое вращение группы, парение, пульсацию, наведение и выбор.
type OrbitSystem struct {
	cfg        config.OrbitConfig
	categories []component.Category
	skills     []component.Skill
	states     []component.SkillState
	slots      []OrbitSlot
	angle      float64
	elapsed    float64
	selected   int
	hovered    int
}

// NewOrbitSystem строит раскладку. Навыки с неизвестной категорией пропускаются.
func NewOrbitSystem(categories []component.Category, skills []component.Skill, cfg config.OrbitConfig) *OrbitSystem {
	s := &OrbitSystem{
		cfg:        cfg,
		categories: append([]component.Category(nil), categories...),
		selected:   NoSelection,
		hovered:    NoSelection,
	}

	catIndex := make(map[string]int, len(categories))
	for i, c := range categories {
		catIndex[c.Name] = i
	}
	for _, sk := range skills {
		if _, ok := catIndex[sk.Category]; !ok {
			log.Printf("orbit: skill %q has unknown category %q, skipped", sk.Name, sk.Category)
			continue
		}
		s.skills = append(s.skills, sk)
	}

	s.states = make([]component.SkillState, len(s.skills))
	for i := range s.states {
		s.states[i].Scale = 1
	}
	s.slots = Layout(s.categories, s.skills)
	return s
}

// Layout вычисляет места навыков по категориям. Порядок внутри категории -
// порядок в каталоге. Пустая категория ничего не добавляет.
func Layout(categories []component.Category, skills []component.Skill) []OrbitSlot {
	slots := make([]OrbitSlot, len(skills))
	for ci, cat := range categories {
		var members []int
		for si, sk := range skills {
			if sk.Category == cat.Name {
				members = append(members, si)
			}
		}
		k := len(members)
		if k == 0 {
			continue
		}
		for ordinal, si := range members {
			theta := float64(ordinal) / float64(k) * 2 * math.Pi
			slots[si] = OrbitSlot{
				Skill:    si,
				Category: ci,
				Ordinal:  ordinal,
				Angle:    theta,
				X:        cat.Radius * math.Cos(theta),
				Y:        cat.Layer,
				Z:        cat.Radius * math.Sin(theta),
			}
		}
	}
	return slots
}

// Update продвигает анимацию на один кадр.
func (s *OrbitSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.cfg.RotationEnabled && s.selected == NoSelection {
		s.angle = utils.NormalizeAngle(s.angle + s.cfg.RotationSpeed)
	}
	for i := range s.states {
		st := &s.states[i]
		st.SpinX = utils.NormalizeAngle(st.SpinX + s.cfg.SpinSpeedX)
		st.SpinY = utils.NormalizeAngle(st.SpinY + s.cfg.SpinSpeedY)
		st.Scale = utils.Lerp(st.Scale, s.targetScale(i), s.cfg.ScaleLerp)
	}
}

func (s *OrbitSystem) targetScale(i int) float64 {
	switch {
	case s.states[i].Hovered:
		return s.cfg.HoverScale
	case i == s.selected:
		return s.cfg.SelectedScale
	default:
		return 1
	}
}

// Transform возвращает представление навыка i на текущем кадре.
func (s *OrbitSystem) Transform(i int) component.OrbVisual {
	slot := s.slots[i]
	cat := s.categories[slot.Category]
	st := s.states[i]

	phi := slot.Angle + s.angle
	v := component.OrbVisual{
		X:        cat.Radius * math.Cos(phi),
		Y:        cat.Layer + math.Sin(s.elapsed*s.cfg.FloatSpeed+float64(i))*s.cfg.FloatAmplitude,
		Z:        cat.Radius * math.Sin(phi),
		Angle:    phi,
		SpinX:    st.SpinX,
		SpinY:    st.SpinY,
		Scale:    st.Scale,
		Glow:     s.cfg.GlowBase,
		Hovered:  st.Hovered,
		Selected: i == s.selected,
	}
	if v.Selected {
		v.Scale *= 1 + math.Sin(s.elapsed*s.cfg.PulseSpeed)*0.1
		v.Glow = s.cfg.GlowSelected
	}
	if v.Hovered {
		v.Glow = s.cfg.GlowHover
	}
	return v
}

// Toggle переключает выбор: повторный клик по выбранному снимает выбор,
// клик по другому навыку заменяет его. Возвращает новый выбор.
func (s *OrbitSystem) Toggle(i int) (int, bool) {
	if i < 0 || i >= len(s.skills) {
		return s.Selected()
	}
	if s.selected == i {
		s.selected = NoSelection
	} else {
		s.selected = i
	}
	return s.Selected()
}

// Select выбирает навык i (или снимает выбор при i < 0).
func (s *OrbitSystem) Select(i int) {
	if i < 0 || i >= len(s.skills) {
		s.selected = NoSelection
		return
	}
	s.selected = i
}

// Clear снимает выбор.
func (s *OrbitSystem) Clear() {
	s.selected = NoSelection
}

// Selected возвращает выбранный навык, если он есть.
func (s *OrbitSystem) Selected() (int, bool) {
	return s.selected, s.selected != NoSelection
}

// SetHovered отмечает навык под курсором; предыдущий теряет наведение.
// Вращение группы наведение не останавливает.
func (s *OrbitSystem) SetHovered(i int) {
	if i < 0 || i >= len(s.skills) {
		s.ClearHover()
		return
	}
	if s.hovered != NoSelection {
		s.states[s.hovered].Hovered = false
	}
	s.hovered = i
	s.states[i].Hovered = true
}

// ClearHover снимает наведение.
func (s *OrbitSystem) ClearHover() {
	if s.hovered != NoSelection {
		s.states[s.hovered].Hovered = false
	}
	s.hovered = NoSelection
}

// Hovered возвращает навык под курсором, если он есть.
func (s *OrbitSystem) Hovered() (int, bool) {
	return s.hovered, s.hovered != NoSelection
}

// SetRotationEnabled включает или выключает вращение группы.
func (s *OrbitSystem) SetRotationEnabled(enabled bool) {
	s.cfg.RotationEnabled = enabled
}

// Angle возвращает текущий угол поворота группы, рад.
func (s *OrbitSystem) Angle() float64 { return s.angle }

// Elapsed возвращает время анимации, с.
func (s *OrbitSystem) Elapsed() float64 { return s.elapsed }

// Skills возвращает каталог в порядке раскладки.
func (s *OrbitSystem) Skills() []component.Skill { return s.skills }

// Categories возвращает кольца.
func (s *OrbitSystem) Categories() []component.Category { return s.categories }

// Slots возвращает статическую раскладку.
func (s *OrbitSystem) Slots() []OrbitSlot { return s.slots }

// Slot возвращает место навыка i.
func (s *OrbitSystem) Slot(i int) OrbitSlot { return s.slots[i] }

// Config возвращает параметры движка.
func (s *OrbitSystem) Config() config.OrbitConfig { return s.cfg }

// Len возвращает число навыков.
func (s *OrbitSystem) Len() int { return len(s.skills) }
