// internal/component/visual.go
package component

// OrbVisual - вычисленное на кадр представление орба для рендеринга.
type OrbVisual struct {
	X, Y, Z  float64 // мировые координаты с учётом вращения группы и парения
	Angle    float64 // угловая позиция на кольце после поворота группы, рад
	SpinX    float64
	SpinY    float64
	Scale    float64 // итоговый масштаб с пульсацией
	Glow     float64 // интенсивность свечения
	Hovered  bool
	Selected bool
}
