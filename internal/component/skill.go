package component

import "image/color"

// Category - кольцо орбиты: общая группа навыков с радиусом и слоем.
type Category struct {
	Name   string
	Title  string  // подпись для инфо-панели
	Radius float64 // радиус кольца в мировых единицах (3D)
	Layer  float64 // смещение по вертикали в 3D
	// ScreenRadius - радиус кольца в пикселях для плоской раскладки.
	ScreenRadius float64
}

// Skill - запись каталога навыков.
type Skill struct {
	Name     string
	Color    color.RGBA
	Category string
}

// SkillState - изменяемое состояние орба, которым владеет движок орбит.
type SkillState struct {
	Hovered bool
	Scale   float64 // текущий визуальный масштаб, плавно тянется к целевому
	SpinX   float64 // собственное вращение, рад
	SpinY   float64
}
